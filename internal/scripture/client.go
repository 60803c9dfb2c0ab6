package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lectio-app/lectio/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Lectio/1.0"
)

// Client implements domain.ContentRepository against the scripture content
// API (api.scripture.api.bible v1).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new content API client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET and returns the response body
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("content api request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("content api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrChapterNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("content api error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// decodeData unwraps the {"data": ...} envelope into target
func decodeData(body []byte, target interface{}) error {
	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}

// ListTranslations returns all available scripture editions
func (c *Client) ListTranslations(ctx context.Context) ([]domain.Translation, error) {
	body, err := c.doRequest(ctx, "/bibles", nil)
	if err != nil {
		return nil, err
	}

	var dtos []bibleDTO
	if err := decodeData(body, &dtos); err != nil {
		return nil, err
	}
	return MapTranslations(dtos), nil
}

// ListBooks returns all books of a translation
func (c *Client) ListBooks(ctx context.Context, translationID string) ([]domain.Book, error) {
	path := fmt.Sprintf("/bibles/%s/books", translationID)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var dtos []bookDTO
	if err := decodeData(body, &dtos); err != nil {
		return nil, err
	}
	return MapBooks(dtos), nil
}

// ListChapters returns the chapter listing for a book
func (c *Client) ListChapters(ctx context.Context, translationID, bookID string) ([]domain.ChapterSummary, error) {
	path := fmt.Sprintf("/bibles/%s/books/%s/chapters", translationID, bookID)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var dtos []chapterDTO
	if err := decodeData(body, &dtos); err != nil {
		return nil, err
	}
	return MapChapterSummaries(dtos), nil
}

// GetChapter fetches one chapter body by reference
func (c *Client) GetChapter(ctx context.Context, ref domain.ChapterReference) (*domain.Chapter, error) {
	path := fmt.Sprintf("/bibles/%s/chapters/%s", ref.TranslationID, ref.ChapterID)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var dto chapterDTO
	if err := decodeData(body, &dto); err != nil {
		return nil, err
	}
	ch := MapChapter(dto)
	return &ch, nil
}

// ListVerses returns the verse listing for a chapter
func (c *Client) ListVerses(ctx context.Context, translationID, chapterID string) ([]domain.VerseSummary, error) {
	path := fmt.Sprintf("/bibles/%s/chapters/%s/verses", translationID, chapterID)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var dtos []verseDTO
	if err := decodeData(body, &dtos); err != nil {
		return nil, err
	}
	return MapVerseSummaries(dtos), nil
}

// GetVerse fetches a single verse by its identifier
func (c *Client) GetVerse(ctx context.Context, translationID, verseID string) (*domain.Passage, error) {
	path := fmt.Sprintf("/bibles/%s/verses/%s", translationID, verseID)
	body, err := c.doRequest(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var dto verseDTO
	if err := decodeData(body, &dto); err != nil {
		return nil, err
	}
	passage := MapPassage(dto)
	return &passage, nil
}

// Search runs a paginated full-text search within a translation
func (c *Client) Search(ctx context.Context, translationID, query string, limit, offset int) (*domain.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	path := fmt.Sprintf("/bibles/%s/search", translationID)
	body, err := c.doRequest(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var dto searchDTO
	if err := decodeData(body, &dto); err != nil {
		return nil, err
	}
	result := MapSearchResult(dto)
	return &result, nil
}
