package domain

// Translation identifies a scripture edition. IDs are issued by the content
// API and treated as opaque strings.
type Translation struct {
	ID           string // API-issued identifier
	Abbreviation string // Short label, e.g. "KJV"
	Name         string // Full display name
	Description  string // Edition description
	Language     string // Language display name
}

// Book is a single book within a translation.
type Book struct {
	ID            string // Opaque book identifier, e.g. "GEN"
	TranslationID string
	Abbreviation  string
	Name          string // Display name, e.g. "Genesis"
	NameLong      string
}

// ChapterSummary is a chapter as it appears in a book's chapter listing
// (no body content).
type ChapterSummary struct {
	ID            string // Opaque chapter identifier
	TranslationID string
	BookID        string
	Number        string // Chapter number as delivered by the API ("1", "intro")
	Reference     string // Human-readable label, e.g. "Genesis 1"
}

// Chapter is the as-received chapter record: identifiers, a reference label,
// and the raw marked-up content string (may be empty when the API omits it).
// Immutable once constructed; replaced wholesale on refresh, never patched.
type Chapter struct {
	ID            string // Opaque chapter identifier
	TranslationID string
	BookID        string
	Number        string // Chapter number as delivered by the API
	Reference     string // Human-readable label, e.g. "Genesis 1"
	Content       string // Raw markup; empty when absent
	Copyright     string
	VerseCount    int
}

// ChapterReference addresses one chapter within one translation. It is the
// sole cache key: the same reference always names the same logical chapter.
// The chapter ID format is owned by the remote API; nothing here assumes a
// separator or field count.
type ChapterReference struct {
	TranslationID string
	ChapterID     string
}

// Verse is a numbered unit of text within a parsed chapter. Text carries no
// markup. ID, when set, is stable across re-parses of the same chapter so
// verse deep-links survive a cache refresh.
type Verse struct {
	Number int
	Text   string
	ID     string // "{bookID}.{chapter}.{number}", empty when bookID unknown
}

// ParsedChapter is the verse-level view of a Chapter. Always derived fresh
// from the raw record; never persisted (the raw Chapter is what gets cached,
// keeping the cache format stable across parser changes).
type ParsedChapter struct {
	Book          string
	Chapter       int
	TranslationID string
	Reference     string
	Copyright     string
	Verses        []Verse
}

// VerseSummary is a verse as it appears in a chapter's verse listing.
type VerseSummary struct {
	ID        string
	Reference string
}

// Passage is a single verse fetched by ID, with its content.
type Passage struct {
	ID            string
	TranslationID string
	BookID        string
	ChapterID     string
	Reference     string
	Content       string
}

// SearchHit is one verse match from a full-text search.
type SearchHit struct {
	ID            string // Verse identifier, e.g. "GEN.1.1"
	TranslationID string
	BookID        string
	ChapterID     string
	Reference     string // e.g. "Genesis 1:1"
	Content       string
}

// SearchResult is a page of full-text search matches.
type SearchResult struct {
	Query  string
	Limit  int
	Offset int
	Total  int
	Hits   []SearchHit
}

// IndexEntry is the enumerable metadata record kept for each cached chapter.
type IndexEntry struct {
	Reference string `json:"reference"`
	CachedAt  int64  `json:"cachedAt"` // Unix milliseconds
}
