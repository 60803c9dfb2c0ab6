package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lectio-app/lectio/internal/domain"
)

type searchRepo struct {
	domain.ContentRepository

	lastQuery  string
	lastLimit  int
	lastOffset int
	result     *domain.SearchResult
	err        error
}

func (r *searchRepo) Search(ctx context.Context, translationID, query string, limit, offset int) (*domain.SearchResult, error) {
	r.lastQuery = query
	r.lastLimit = limit
	r.lastOffset = offset
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func TestSearchTrimsAndForwards(t *testing.T) {
	repo := &searchRepo{result: &domain.SearchResult{Query: "light", Total: 1}}
	svc := NewSearchService(repo, testLogger())

	result, err := svc.Search(context.Background(), "niv", "  light  ", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "light", repo.lastQuery)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 5, repo.lastOffset)
}

func TestSearchEmptyQuery(t *testing.T) {
	repo := &searchRepo{}
	svc := NewSearchService(repo, testLogger())

	_, err := svc.Search(context.Background(), "niv", "   ", 10, 0)
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Empty(t, repo.lastQuery, "an empty query must not reach the remote")
}

func TestSearchDefaultsPagination(t *testing.T) {
	repo := &searchRepo{result: &domain.SearchResult{}}
	svc := NewSearchService(repo, testLogger())

	_, err := svc.Search(context.Background(), "niv", "light", 0, -3)
	require.NoError(t, err)
	assert.Equal(t, defaultSearchLimit, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
}

func TestSearchPropagatesErrors(t *testing.T) {
	repo := &searchRepo{err: domain.ErrServerOffline}
	svc := NewSearchService(repo, testLogger())

	_, err := svc.Search(context.Background(), "niv", "light", 10, 0)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
}

func TestResolveHit(t *testing.T) {
	tests := []struct {
		name      string
		hit       domain.SearchHit
		wantRef   domain.ChapterReference
		wantVerse int
	}{
		{
			name: "verse id",
			hit: domain.SearchHit{
				ID:            "GEN.1.3",
				TranslationID: "niv",
				ChapterID:     "GEN.1",
				Reference:     "Genesis 1:3",
			},
			wantRef:   domain.ChapterReference{TranslationID: "niv", ChapterID: "GEN.1"},
			wantVerse: 3,
		},
		{
			name: "reference fallback",
			hit: domain.SearchHit{
				ID:            "odd-id",
				TranslationID: "niv",
				ChapterID:     "PSA.23",
				Reference:     "Psalm 23:4",
			},
			wantRef:   domain.ChapterReference{TranslationID: "niv", ChapterID: "PSA.23"},
			wantVerse: 4,
		},
		{
			name: "whole chapter",
			hit: domain.SearchHit{
				ID:            "PSA.23",
				TranslationID: "niv",
				ChapterID:     "PSA.23",
				Reference:     "Psalm 23",
			},
			wantRef:   domain.ChapterReference{TranslationID: "niv", ChapterID: "PSA.23"},
			wantVerse: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, n := ResolveHit(tt.hit)
			assert.Equal(t, tt.wantRef, ref)
			assert.Equal(t, tt.wantVerse, n)
		})
	}
}
