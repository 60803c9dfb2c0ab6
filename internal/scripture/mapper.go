package scripture

import (
	"github.com/lectio-app/lectio/internal/domain"
)

// MapTranslations converts edition DTOs to domain translations
func MapTranslations(dtos []bibleDTO) []domain.Translation {
	translations := make([]domain.Translation, 0, len(dtos))
	for _, d := range dtos {
		translations = append(translations, domain.Translation{
			ID:           d.ID,
			Abbreviation: d.Abbreviation,
			Name:         d.Name,
			Description:  d.Description,
			Language:     d.Language.Name,
		})
	}
	return translations
}

// MapBooks converts book DTOs to domain books
func MapBooks(dtos []bookDTO) []domain.Book {
	books := make([]domain.Book, 0, len(dtos))
	for _, d := range dtos {
		books = append(books, domain.Book{
			ID:            d.ID,
			TranslationID: d.BibleID,
			Abbreviation:  d.Abbreviation,
			Name:          d.Name,
			NameLong:      d.NameLong,
		})
	}
	return books
}

// MapChapterSummaries converts chapter-listing DTOs to domain summaries
func MapChapterSummaries(dtos []chapterDTO) []domain.ChapterSummary {
	chapters := make([]domain.ChapterSummary, 0, len(dtos))
	for _, d := range dtos {
		chapters = append(chapters, domain.ChapterSummary{
			ID:            d.ID,
			TranslationID: d.BibleID,
			BookID:        d.BookID,
			Number:        d.Number,
			Reference:     d.Reference,
		})
	}
	return chapters
}

// MapChapter converts a chapter-body DTO to the domain raw chapter record
func MapChapter(d chapterDTO) domain.Chapter {
	return domain.Chapter{
		ID:            d.ID,
		TranslationID: d.BibleID,
		BookID:        d.BookID,
		Number:        d.Number,
		Reference:     d.Reference,
		Content:       d.Content,
		Copyright:     d.Copyright,
		VerseCount:    d.VerseCount,
	}
}

// MapVerseSummaries converts verse-listing DTOs to domain summaries
func MapVerseSummaries(dtos []verseDTO) []domain.VerseSummary {
	verses := make([]domain.VerseSummary, 0, len(dtos))
	for _, d := range dtos {
		verses = append(verses, domain.VerseSummary{
			ID:        d.ID,
			Reference: d.Reference,
		})
	}
	return verses
}

// MapPassage converts a single-verse DTO to a domain passage
func MapPassage(d verseDTO) domain.Passage {
	return domain.Passage{
		ID:            d.ID,
		TranslationID: d.BibleID,
		BookID:        d.BookID,
		ChapterID:     d.ChapterID,
		Reference:     d.Reference,
		Content:       d.Content,
	}
}

// MapSearchResult converts a search DTO to the domain result page
func MapSearchResult(d searchDTO) domain.SearchResult {
	hits := make([]domain.SearchHit, 0, len(d.Verses))
	for _, v := range d.Verses {
		hits = append(hits, domain.SearchHit{
			ID:            v.ID,
			TranslationID: v.BibleID,
			BookID:        v.BookID,
			ChapterID:     v.ChapterID,
			Reference:     v.Reference,
			Content:       v.Content,
		})
	}
	return domain.SearchResult{
		Query:  d.Query,
		Limit:  d.Limit,
		Offset: d.Offset,
		Total:  d.Total,
		Hits:   hits,
	}
}
