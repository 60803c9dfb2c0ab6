package service

import (
	"context"
	"log/slog"

	"github.com/lectio-app/lectio/internal/domain"
)

// ContentService is the single entry point screens use for chapter content.
// Availability beats freshness: a previously cached chapter is served when
// the network is out or the remote fails, but a fresh fetch is always tried
// first while connectivity is plausible.
type ContentService struct {
	repo   domain.ContentRepository
	store  domain.ChapterStore
	probe  domain.ConnectivityProbe
	logger *slog.Logger
}

// NewContentService creates a new content service
func NewContentService(repo domain.ContentRepository, store domain.ChapterStore, probe domain.ConnectivityProbe, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{
		repo:   repo,
		store:  store,
		probe:  probe,
		logger: logger,
	}
}

// FetchChapter resolves a chapter body.
//
// Offline: the cache is the only option; a miss is terminal
// (domain.ErrNotAvailableOffline, not to be retried automatically).
// Online: remote first; a successful fetch is cached and returned, a failed
// one falls back to the cache as a degraded success. Only a failure with no
// cached copy propagates, and that error stays retryable.
func (s *ContentService) FetchChapter(ctx context.Context, ref domain.ChapterReference) (*domain.Chapter, error) {
	if !s.probe.IsOnline(ctx) {
		if ch, ok := s.store.Get(ctx, ref); ok {
			return ch, nil
		}
		return nil, domain.ErrNotAvailableOffline
	}

	ch, err := s.repo.GetChapter(ctx, ref)
	if err != nil {
		if cached, ok := s.store.Get(ctx, ref); ok {
			s.logger.Warn("remote fetch failed, using cached chapter", "error", err, "chapterID", ref.ChapterID)
			return cached, nil
		}
		s.logger.Error("failed to fetch chapter", "error", err, "chapterID", ref.ChapterID)
		return nil, err
	}

	// Put is fail-soft: a cache write error never fails the fetch.
	s.store.Put(ctx, ref, *ch)

	return ch, nil
}

// Preload unconditionally fetches and caches a chapter so it can be read
// offline later. No offline short-circuit: preloading without connectivity
// simply fails.
func (s *ContentService) Preload(ctx context.Context, ref domain.ChapterReference) (*domain.Chapter, error) {
	ch, err := s.repo.GetChapter(ctx, ref)
	if err != nil {
		s.logger.Error("failed to preload chapter", "error", err, "chapterID", ref.ChapterID)
		return nil, err
	}

	s.store.Put(ctx, ref, *ch)
	s.logger.Info("chapter preloaded", "reference", ch.Reference, "chapterID", ref.ChapterID)

	return ch, nil
}

// ListTranslations returns all available scripture editions
func (s *ContentService) ListTranslations(ctx context.Context) ([]domain.Translation, error) {
	translations, err := s.repo.ListTranslations(ctx)
	if err != nil {
		s.logger.Error("failed to list translations", "error", err)
		return nil, err
	}
	return translations, nil
}

// ListBooks returns all books of a translation
func (s *ContentService) ListBooks(ctx context.Context, translationID string) ([]domain.Book, error) {
	books, err := s.repo.ListBooks(ctx, translationID)
	if err != nil {
		s.logger.Error("failed to list books", "error", err, "translationID", translationID)
		return nil, err
	}
	return books, nil
}

// ListChapters returns the chapter listing for a book
func (s *ContentService) ListChapters(ctx context.Context, translationID, bookID string) ([]domain.ChapterSummary, error) {
	chapters, err := s.repo.ListChapters(ctx, translationID, bookID)
	if err != nil {
		s.logger.Error("failed to list chapters", "error", err, "bookID", bookID)
		return nil, err
	}
	return chapters, nil
}

// ListVerses returns the verse listing for a chapter
func (s *ContentService) ListVerses(ctx context.Context, translationID, chapterID string) ([]domain.VerseSummary, error) {
	verses, err := s.repo.ListVerses(ctx, translationID, chapterID)
	if err != nil {
		s.logger.Error("failed to list verses", "error", err, "chapterID", chapterID)
		return nil, err
	}
	return verses, nil
}

// GetVerse fetches a single verse by its identifier
func (s *ContentService) GetVerse(ctx context.Context, translationID, verseID string) (*domain.Passage, error) {
	passage, err := s.repo.GetVerse(ctx, translationID, verseID)
	if err != nil {
		s.logger.Error("failed to get verse", "error", err, "verseID", verseID)
		return nil, err
	}
	return passage, nil
}

// ListOffline enumerates cached chapters for a translation
func (s *ContentService) ListOffline(ctx context.Context, translationID string) map[string]domain.IndexEntry {
	return s.store.ListForTranslation(ctx, translationID)
}

// RemoveOffline removes one cached chapter
func (s *ContentService) RemoveOffline(ctx context.Context, ref domain.ChapterReference) {
	s.store.DeleteOne(ctx, ref)
}

// ClearOffline removes every cached chapter
func (s *ContentService) ClearOffline(ctx context.Context) {
	s.store.DeleteAll(ctx)
}
