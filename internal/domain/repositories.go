package domain

import (
	"context"
)

// ContentRepository provides access to the remote scripture content API
type ContentRepository interface {
	// ListTranslations returns all available scripture editions
	ListTranslations(ctx context.Context) ([]Translation, error)

	// ListBooks returns all books of a translation
	ListBooks(ctx context.Context, translationID string) ([]Book, error)

	// ListChapters returns the chapter listing for a book (no bodies)
	ListChapters(ctx context.Context, translationID, bookID string) ([]ChapterSummary, error)

	// GetChapter fetches one chapter body by reference.
	// The returned Chapter's Content may be empty when the API omits it.
	GetChapter(ctx context.Context, ref ChapterReference) (*Chapter, error)

	// ListVerses returns the verse listing for a chapter (no bodies)
	ListVerses(ctx context.Context, translationID, chapterID string) ([]VerseSummary, error)

	// GetVerse fetches a single verse by its identifier
	GetVerse(ctx context.Context, translationID, verseID string) (*Passage, error)

	// Search runs a paginated full-text search within a translation
	Search(ctx context.Context, translationID, query string, limit, offset int) (*SearchResult, error)
}

// ConnectivityProbe answers whether the network is plausibly reachable.
// Advisory only: a false positive (captive portal) is handled by the content
// service's remote-failure fallback, not here.
type ConnectivityProbe interface {
	IsOnline(ctx context.Context) bool
}

// KeyValue is the persistent key-value storage capability backing the
// offline cache. Values are JSON blobs; keys are opaque strings.
type KeyValue interface {
	// Get returns the stored value, or ok=false when the key is absent
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores a value under a key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes a key; removing an absent key is a no-op
	Remove(ctx context.Context, key string) error

	Close() error
}

// ChapterStore is the offline chapter cache. Every operation is fail-soft:
// storage errors are logged and swallowed, never surfaced, because the cache
// is an optimization rather than a source of truth.
type ChapterStore interface {
	// Put caches a chapter body and records it in the translation's index
	Put(ctx context.Context, ref ChapterReference, ch Chapter)

	// Get returns the cached chapter, or ok=false when never written,
	// deleted, or unreadable
	Get(ctx context.Context, ref ChapterReference) (ch *Chapter, ok bool)

	// ListForTranslation enumerates cached chapters from the index only;
	// empty map when the translation was never cached
	ListForTranslation(ctx context.Context, translationID string) map[string]IndexEntry

	// DeleteOne removes a chapter body and its index record; idempotent
	DeleteOne(ctx context.Context, ref ChapterReference)

	// DeleteAll removes every cached chapter and clears the index,
	// continuing past individual delete failures
	DeleteAll(ctx context.Context)
}
