package verse

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes all markup from a fragment, keeping text content and
// decoding entities. Malformed markup never fails: the tokenizer consumes
// what it can and the text that was seen is returned.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
