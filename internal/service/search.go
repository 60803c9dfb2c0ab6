package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/lectio-app/lectio/internal/domain"
	"github.com/lectio-app/lectio/internal/verse"
)

const defaultSearchLimit = 50

// ErrEmptyQuery indicates a search was attempted with no query text
var ErrEmptyQuery = errors.New("search query is empty")

// SearchService runs full-text searches against the content API. Results
// are not cached: query-level staleness is the remote's concern.
type SearchService struct {
	repo   domain.ContentRepository
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo domain.ContentRepository, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{repo: repo, logger: logger}
}

// Search runs a paginated full-text search within a translation
func (s *SearchService) Search(ctx context.Context, translationID, query string, limit, offset int) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	result, err := s.repo.Search(ctx, translationID, query, limit, offset)
	if err != nil {
		s.logger.Error("search failed", "error", err, "query", query)
		return nil, err
	}

	s.logger.Debug("search completed", "query", query, "total", result.Total)
	return result, nil
}

// ResolveHit turns a search hit into the chapter reference and verse number
// its deep-link points at. The verse number comes from the hit's identifier
// when it has the dot-delimited form, else from the reference label; zero
// means the hit addresses a whole chapter.
func ResolveHit(hit domain.SearchHit) (domain.ChapterReference, int) {
	ref := domain.ChapterReference{
		TranslationID: hit.TranslationID,
		ChapterID:     hit.ChapterID,
	}
	if n, ok := verse.Number(hit.ID, hit.Reference); ok {
		return ref, n
	}
	return ref, 0
}
