package store

import "github.com/lectio-app/lectio/internal/domain"

// Cache key shapes are a compatibility contract: a swapped-in storage
// backend must keep addressing existing entries.
const (
	// IndexKey holds the translation -> chapter index for all cached chapters
	IndexKey = "offline_chapters_index"

	chapterKeyPrefix = "chapter_"
)

// ChapterKey returns the body key for a chapter reference
// (chapter_{translationID}_{chapterID}).
func ChapterKey(ref domain.ChapterReference) string {
	return chapterKeyPrefix + ref.TranslationID + "_" + ref.ChapterID
}
