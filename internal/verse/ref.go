package verse

import (
	"strconv"
	"strings"

	"github.com/lectio-app/lectio/internal/domain"
)

// NumberFromVerseID extracts the verse number from a dot-delimited
// identifier of the BOOK.CHAPTER.VERSE form, e.g. "GEN.1.2".
func NumberFromVerseID(id string) (int, bool) {
	parts := strings.Split(id, ".")
	if len(parts) < 3 {
		return 0, false
	}
	return leadingInt(parts[len(parts)-1])
}

// NumberFromReference extracts the verse number from a human-readable
// reference of the "Book Chapter:Verse" form, e.g. "Genesis 1:2". Ranges
// like "Genesis 1:2-4" resolve to the first verse.
func NumberFromReference(ref string) (int, bool) {
	idx := strings.LastIndex(ref, ":")
	if idx < 0 || idx+1 >= len(ref) {
		return 0, false
	}
	return leadingInt(ref[idx+1:])
}

// Number resolves a verse number from an identifier and a reference label.
// Identifier-based extraction is tried first, the reference string second.
func Number(id, reference string) (int, bool) {
	if n, ok := NumberFromVerseID(id); ok {
		return n, ok
	}
	return NumberFromReference(reference)
}

// ChapterNumber resolves a chapter's numeric position from its raw record:
// the API's number field when numeric, else the trailing number of the
// reference label ("Genesis 1"), else 1.
func ChapterNumber(ch domain.Chapter) int {
	if n, err := strconv.Atoi(strings.TrimSpace(ch.Number)); err == nil && n > 0 {
		return n
	}
	ref := strings.TrimSpace(ch.Reference)
	if idx := strings.LastIndex(ref, " "); idx >= 0 {
		if n, ok := leadingInt(ref[idx+1:]); ok {
			return n
		}
	}
	return 1
}

// BookLabel resolves the display book name from a chapter's reference label
// by dropping its trailing chapter number, falling back to the book ID.
func BookLabel(ch domain.Chapter) string {
	ref := strings.TrimSpace(ch.Reference)
	if idx := strings.LastIndex(ref, " "); idx > 0 {
		if _, ok := leadingInt(ref[idx+1:]); ok {
			return ref[:idx]
		}
	}
	if ref != "" {
		return ref
	}
	return ch.BookID
}

// ParseChapter derives the verse-level view of a raw chapter record.
func ParseChapter(ch domain.Chapter) domain.ParsedChapter {
	number := ChapterNumber(ch)
	return domain.ParsedChapter{
		Book:          BookLabel(ch),
		Chapter:       number,
		TranslationID: ch.TranslationID,
		Reference:     ch.Reference,
		Copyright:     ch.Copyright,
		Verses:        Parse(ch.Content, Context{BookID: ch.BookID, ChapterNumber: number}),
	}
}

// leadingInt parses the leading decimal digits of a string.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
