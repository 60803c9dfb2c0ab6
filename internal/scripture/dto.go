package scripture

import "encoding/json"

// dataEnvelope is the response wrapper used by every content API endpoint.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// bibleDTO mirrors one edition record from GET /bibles
type bibleDTO struct {
	ID                string `json:"id"`
	DBLID             string `json:"dblId,omitempty"`
	Abbreviation      string `json:"abbreviation"`
	AbbreviationLocal string `json:"abbreviationLocal,omitempty"`
	Name              string `json:"name"`
	NameLocal         string `json:"nameLocal,omitempty"`
	Description       string `json:"description,omitempty"`
	DescriptionLocal  string `json:"descriptionLocal,omitempty"`
	Language          struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		NameLocal       string `json:"nameLocal,omitempty"`
		Script          string `json:"script,omitempty"`
		ScriptDirection string `json:"scriptDirection,omitempty"`
	} `json:"language"`
}

// bookDTO mirrors one book record from GET /bibles/{id}/books
type bookDTO struct {
	ID           string `json:"id"`
	BibleID      string `json:"bibleId"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Name         string `json:"name"`
	NameLong     string `json:"nameLong,omitempty"`
}

// chapterDTO mirrors a chapter record. Content is present only when a single
// chapter body is fetched; listings omit it.
type chapterDTO struct {
	ID         string `json:"id"`
	BibleID    string `json:"bibleId"`
	Number     string `json:"number"`
	BookID     string `json:"bookId"`
	Reference  string `json:"reference"`
	Content    string `json:"content,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
	VerseCount int    `json:"verseCount,omitempty"`
}

// verseDTO mirrors a verse record from verse and search endpoints
type verseDTO struct {
	ID        string `json:"id"`
	OrgID     string `json:"orgId,omitempty"`
	BibleID   string `json:"bibleId"`
	BookID    string `json:"bookId"`
	ChapterID string `json:"chapterId"`
	Content   string `json:"content,omitempty"`
	Reference string `json:"reference"`
}

// searchDTO mirrors the payload of GET /bibles/{id}/search
type searchDTO struct {
	Query      string     `json:"query"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	Total      int        `json:"total"`
	VerseCount int        `json:"verseCount"`
	Verses     []verseDTO `json:"verses"`
}
