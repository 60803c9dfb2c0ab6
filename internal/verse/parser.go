package verse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lectio-app/lectio/internal/domain"
)

// Context carries the addressing information used to derive stable verse IDs.
type Context struct {
	BookID        string
	ChapterNumber int
}

// A strategy locates verse-number boundaries in markup. Group 1 captures the
// verse number; the matched region is the boundary itself and is excluded
// from verse text.
type strategy struct {
	name    string
	pattern *regexp.Regexp
}

// Strategies are tried in priority order. The first one that yields at least
// one match wins; the rest are ignored for that input.
var strategies = []strategy{
	// Inline numbered spans with a verse class marker:
	// <span class="v">1</span>, <span class="verse number">1</span>
	{"class-span", regexp.MustCompile(`(?is)<span[^>]*\bclass\s*=\s*"[^"]*\bv(?:erse)?\b[^"]*"[^>]*>\s*(\d{1,3})\s*</span>`)},
	// Superscript verse numbers: <sup>1</sup>
	{"sup", regexp.MustCompile(`(?is)<sup[^>]*>\s*(\d{1,3})\s*</sup>`)},
	// Numeric-attribute-tagged spans: <span data-number="1">
	{"data-attr", regexp.MustCompile(`(?is)<span[^>]*\bdata-(?:number|verse)\s*=\s*"(\d{1,3})"[^>]*>`)},
}

// plainNumber finds a number followed by whitespace at a segment start in
// already-stripped text. Heuristic fallback for unstructured content.
var plainNumber = regexp.MustCompile(`(?:^|\s)(\d{1,3})\s+`)

var wsRun = regexp.MustCompile(`\s+`)

// Parse converts a chapter's raw marked-up content into an ordered verse
// sequence. It never fails: unrecognized input degrades to a single
// synthetic verse, and empty or absent input yields an empty sequence.
func Parse(markup string, ctx Context) []domain.Verse {
	normalized := collapseWhitespace(markup)
	if normalized == "" {
		return nil
	}

	for _, s := range strategies {
		if verses := extract(normalized, s.pattern, ctx); len(verses) > 0 {
			return finalize(verses)
		}
	}

	plain := collapseWhitespace(StripTags(normalized))
	if verses := extractPlain(plain, ctx); len(verses) > 0 {
		return finalize(verses)
	}

	if plain == "" {
		return nil
	}

	// Unstructured but non-empty content becomes one synthetic verse.
	return []domain.Verse{{Number: 1, Text: plain, ID: verseID(ctx, 1)}}
}

// extract captures verse number + trailing text between boundaries of one
// convention, stripping residual tags from each captured segment.
func extract(markup string, pattern *regexp.Regexp, ctx Context) []domain.Verse {
	matches := pattern.FindAllStringSubmatchIndex(markup, -1)
	if len(matches) == 0 {
		return nil
	}

	verses := make([]domain.Verse, 0, len(matches))
	for i, m := range matches {
		number, err := strconv.Atoi(markup[m[2]:m[3]])
		if err != nil || number <= 0 {
			continue
		}

		end := len(markup)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		text := collapseWhitespace(StripTags(markup[m[1]:end]))
		if text == "" {
			continue
		}

		verses = append(verses, domain.Verse{
			Number: number,
			Text:   text,
			ID:     verseID(ctx, number),
		})
	}
	return verses
}

// extractPlain applies the same segment rules to tag-stripped text, using
// leading numbers as boundaries.
func extractPlain(plain string, ctx Context) []domain.Verse {
	matches := plainNumber.FindAllStringSubmatchIndex(plain, -1)
	if len(matches) == 0 {
		return nil
	}

	verses := make([]domain.Verse, 0, len(matches))
	for i, m := range matches {
		number, err := strconv.Atoi(plain[m[2]:m[3]])
		if err != nil || number <= 0 {
			continue
		}

		end := len(plain)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		text := collapseWhitespace(plain[m[1]:end])
		if text == "" {
			continue
		}

		verses = append(verses, domain.Verse{
			Number: number,
			Text:   text,
			ID:     verseID(ctx, number),
		})
	}
	return verses
}

// finalize sorts ascending by verse number and drops duplicate numbers,
// keeping the first occurrence. Gaps in numbering are left alone.
func finalize(verses []domain.Verse) []domain.Verse {
	sort.SliceStable(verses, func(i, j int) bool {
		return verses[i].Number < verses[j].Number
	})

	out := verses[:0]
	lastNumber := 0
	for _, v := range verses {
		if v.Number == lastNumber {
			continue
		}
		out = append(out, v)
		lastNumber = v.Number
	}
	return out
}

// verseID derives the stable deep-link identifier for a verse. Returns empty
// when the book is unknown rather than emitting a dangling ".1.1".
func verseID(ctx Context, number int) string {
	if ctx.BookID == "" {
		return ""
	}
	return fmt.Sprintf("%s.%d.%d", ctx.BookID, ctx.ChapterNumber, number)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}
