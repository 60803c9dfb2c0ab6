package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/lectio-app/lectio/internal/domain"
)

// cachedChapter wraps a raw chapter payload for persistence. The payload is
// stored unmodified; only the cachedAt stamp and addressing fields are added.
type cachedChapter struct {
	Data          domain.Chapter `json:"data"`
	CachedAt      int64          `json:"cachedAt"`
	TranslationID string         `json:"translationId"`
	ChapterID     string         `json:"chapterId"`
	Reference     string         `json:"reference"`
}

// chapterIndex maps translationID -> chapterID -> index entry.
type chapterIndex map[string]map[string]domain.IndexEntry

// OfflineStore implements domain.ChapterStore over an injected key-value
// backend. All operations are fail-soft: storage errors are logged and
// swallowed so the cache can never take down a fetch path that would
// otherwise succeed.
type OfflineStore struct {
	kv     domain.KeyValue
	logger *slog.Logger
	now    func() time.Time

	// Serializes index read-modify-write. The index lives under a single
	// key, so writes for different translations still contend here.
	indexMu sync.Mutex
}

func NewOfflineStore(kv domain.KeyValue, logger *slog.Logger) *OfflineStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &OfflineStore{kv: kv, logger: logger, now: time.Now}
}

// Put caches a chapter body, then records it in the index. If the index
// update fails after the body write, the dangling body stays recoverable and
// the write path never errors.
func (s *OfflineStore) Put(ctx context.Context, ref domain.ChapterReference, ch domain.Chapter) {
	entry := cachedChapter{
		Data:          ch,
		CachedAt:      s.now().UnixMilli(),
		TranslationID: ref.TranslationID,
		ChapterID:     ref.ChapterID,
		Reference:     ch.Reference,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("failed to marshal cached chapter", "error", err, "chapterID", ref.ChapterID)
		return
	}

	if err := s.kv.Set(ctx, ChapterKey(ref), data); err != nil {
		s.logger.Error("failed to save chapter offline", "error", err, "chapterID", ref.ChapterID)
		return
	}

	s.updateIndex(ctx, func(idx chapterIndex) {
		chapters := idx[ref.TranslationID]
		if chapters == nil {
			chapters = make(map[string]domain.IndexEntry)
			idx[ref.TranslationID] = chapters
		}
		chapters[ref.ChapterID] = domain.IndexEntry{
			Reference: ch.Reference,
			CachedAt:  entry.CachedAt,
		}
	})

	s.logger.Debug("chapter saved offline", "reference", ch.Reference, "chapterID", ref.ChapterID)
}

// Get returns the cached chapter payload, or ok=false when absent or
// unreadable.
func (s *OfflineStore) Get(ctx context.Context, ref domain.ChapterReference) (*domain.Chapter, bool) {
	data, ok, err := s.kv.Get(ctx, ChapterKey(ref))
	if err != nil {
		s.logger.Error("failed to read chapter from offline storage", "error", err, "chapterID", ref.ChapterID)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var entry cachedChapter
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Error("corrupt cached chapter", "error", err, "chapterID", ref.ChapterID)
		return nil, false
	}

	s.logger.Debug("loaded chapter from offline storage", "reference", entry.Reference)
	return &entry.Data, true
}

// ListForTranslation enumerates cached chapters for a translation from the
// index alone; chapter bodies are not touched.
func (s *OfflineStore) ListForTranslation(ctx context.Context, translationID string) map[string]domain.IndexEntry {
	idx := s.loadIndex(ctx)
	chapters := idx[translationID]
	if chapters == nil {
		return map[string]domain.IndexEntry{}
	}
	return chapters
}

// DeleteOne removes a chapter body and its index record. Deleting an absent
// entry is a no-op.
func (s *OfflineStore) DeleteOne(ctx context.Context, ref domain.ChapterReference) {
	if err := s.kv.Remove(ctx, ChapterKey(ref)); err != nil {
		s.logger.Error("failed to remove cached chapter", "error", err, "chapterID", ref.ChapterID)
	}

	s.updateIndex(ctx, func(idx chapterIndex) {
		chapters := idx[ref.TranslationID]
		if chapters == nil {
			return
		}
		delete(chapters, ref.ChapterID)
		if len(chapters) == 0 {
			delete(idx, ref.TranslationID)
		}
	})

	s.logger.Debug("cleared offline chapter", "chapterID", ref.ChapterID)
}

// DeleteAll removes every cached chapter body, then clears the index.
// Individual delete failures are logged and skipped rather than aborting
// the sweep.
func (s *OfflineStore) DeleteAll(ctx context.Context) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	idx := s.loadIndex(ctx)
	for translationID, chapters := range idx {
		for chapterID := range chapters {
			ref := domain.ChapterReference{TranslationID: translationID, ChapterID: chapterID}
			if err := s.kv.Remove(ctx, ChapterKey(ref)); err != nil {
				s.logger.Error("failed to remove cached chapter", "error", err, "chapterID", chapterID)
			}
		}
	}

	if err := s.kv.Remove(ctx, IndexKey); err != nil {
		s.logger.Error("failed to clear offline index", "error", err)
		return
	}

	s.logger.Info("all offline chapters cleared")
}

// loadIndex reads the index, treating absence or corruption as empty.
func (s *OfflineStore) loadIndex(ctx context.Context) chapterIndex {
	data, ok, err := s.kv.Get(ctx, IndexKey)
	if err != nil {
		s.logger.Error("failed to read offline index", "error", err)
		return chapterIndex{}
	}
	if !ok {
		return chapterIndex{}
	}

	var idx chapterIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		s.logger.Error("corrupt offline index, starting fresh", "error", err)
		return chapterIndex{}
	}
	if idx == nil {
		return chapterIndex{}
	}
	return idx
}

// updateIndex applies a mutation under the index lock and writes the result
// back. Lost updates between concurrent writers are what the lock prevents.
func (s *OfflineStore) updateIndex(ctx context.Context, mutate func(chapterIndex)) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	idx := s.loadIndex(ctx)
	mutate(idx)

	data, err := json.Marshal(idx)
	if err != nil {
		s.logger.Error("failed to marshal offline index", "error", err)
		return
	}
	if err := s.kv.Set(ctx, IndexKey, data); err != nil {
		s.logger.Error("failed to update offline index", "error", err)
	}
}
