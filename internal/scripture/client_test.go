package scripture

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lectio-app/lectio/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", testLogger())
}

func TestGetChapter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/niv/chapters/GEN.1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{
			"id":"GEN.1","bibleId":"niv","number":"1","bookId":"GEN",
			"reference":"Genesis 1",
			"content":"<span class=\"v\">1</span>In the beginning.",
			"copyright":"PD","verseCount":31
		}}`))
	})

	ch, err := client.GetChapter(context.Background(), domain.ChapterReference{TranslationID: "niv", ChapterID: "GEN.1"})
	require.NoError(t, err)
	assert.Equal(t, "GEN.1", ch.ID)
	assert.Equal(t, "niv", ch.TranslationID)
	assert.Equal(t, "GEN", ch.BookID)
	assert.Equal(t, "1", ch.Number)
	assert.Equal(t, "Genesis 1", ch.Reference)
	assert.Contains(t, ch.Content, "In the beginning.")
	assert.Equal(t, 31, ch.VerseCount)
}

func TestListTranslations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":"de4e12af7f28f599-02","abbreviation":"KJV","name":"King James Version",
			 "description":"Protestant","language":{"id":"eng","name":"English"}}
		]}`))
	})

	translations, err := client.ListTranslations(context.Background())
	require.NoError(t, err)
	require.Len(t, translations, 1)
	assert.Equal(t, "de4e12af7f28f599-02", translations[0].ID)
	assert.Equal(t, "KJV", translations[0].Abbreviation)
	assert.Equal(t, "English", translations[0].Language)
}

func TestListBooks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/niv/books", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":"GEN","bibleId":"niv","abbreviation":"Gen","name":"Genesis","nameLong":"The First Book of Moses"}
		]}`))
	})

	books, err := client.ListBooks(context.Background(), "niv")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "GEN", books[0].ID)
	assert.Equal(t, "Genesis", books[0].Name)
}

func TestListChapters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/niv/books/GEN/chapters", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":"GEN.intro","bibleId":"niv","number":"intro","bookId":"GEN","reference":"Genesis"},
			{"id":"GEN.1","bibleId":"niv","number":"1","bookId":"GEN","reference":"Genesis 1"}
		]}`))
	})

	chapters, err := client.ListChapters(context.Background(), "niv", "GEN")
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, "GEN.intro", chapters[0].ID)
	assert.Equal(t, "1", chapters[1].Number)
}

func TestGetVerse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/niv/verses/GEN.1.3", r.URL.Path)
		w.Write([]byte(`{"data":{
			"id":"GEN.1.3","bibleId":"niv","bookId":"GEN","chapterId":"GEN.1",
			"reference":"Genesis 1:3","content":"<p>And God said, Let there be light.</p>"
		}}`))
	})

	passage, err := client.GetVerse(context.Background(), "niv", "GEN.1.3")
	require.NoError(t, err)
	assert.Equal(t, "GEN.1.3", passage.ID)
	assert.Equal(t, "GEN.1", passage.ChapterID)
	assert.Equal(t, "Genesis 1:3", passage.Reference)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/niv/search", r.URL.Path)
		assert.Equal(t, "light", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))

		w.Write([]byte(`{"data":{
			"query":"light","limit":10,"offset":20,"total":212,
			"verses":[
				{"id":"GEN.1.3","bibleId":"niv","bookId":"GEN","chapterId":"GEN.1",
				 "reference":"Genesis 1:3","content":"And God said, Let there be light."}
			]
		}}`))
	})

	result, err := client.Search(context.Background(), "niv", "light", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 212, result.Total)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "GEN.1.3", result.Hits[0].ID)
	assert.Equal(t, "GEN.1", result.Hits[0].ChapterID)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrAuthFailed},
		{"forbidden", http.StatusForbidden, domain.ErrAuthFailed},
		{"not found", http.StatusNotFound, domain.ErrChapterNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetChapter(context.Background(), domain.ChapterReference{TranslationID: "niv", ChapterID: "GEN.1"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerErrorIsGeneric(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListTranslations(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrServerOffline)
	assert.Contains(t, err.Error(), "500")
}

func TestUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, "test-key", testLogger())

	_, err := client.GetChapter(context.Background(), domain.ChapterReference{TranslationID: "niv", ChapterID: "GEN.1"})
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`))
	})

	_, err := client.ListTranslations(context.Background())
	assert.Error(t, err)
}
