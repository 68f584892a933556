package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 15 * time.Second
	userAgent      = "Marquee/1.0"
)

// Client implements domain.Catalog over the TMDB v3 REST API
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.Catalog = (*Client)(nil)

// statusError is a non-2xx response. It unwraps to ErrUnauthorized for 401
// and ErrUpstream otherwise.
type statusError struct {
	Code    int
	Message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.Unwrap(), e.Code, e.Message)
}

func (e *statusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return domain.ErrUpstream
}

// Options configures a Client. Zero values use defaults.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new TMDB API client
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, domain.ErrNotConfigured
	}

	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", raw)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: base,
		apiKey:  opts.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Trending returns the weekly trending movies
func (c *Client) Trending(ctx context.Context, page int) (domain.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(normalizePage(page)))
	return c.getPage(ctx, "/trending/movie/week", query)
}

// Search returns movies whose title matches text
func (c *Client) Search(ctx context.Context, text string, page int) (domain.PageResult, error) {
	query := url.Values{}
	query.Set("query", text)
	query.Set("page", strconv.Itoa(normalizePage(page)))
	return c.getPage(ctx, "/search/movie", query)
}

// Discover returns movies matching criteria, most popular first.
// Unknown genre or language names are dropped rather than rejected.
func (c *Client) Discover(ctx context.Context, criteria domain.FilterCriteria, page int) (domain.PageResult, error) {
	return c.getPage(ctx, "/discover/movie", DiscoverQuery(criteria, page))
}

// DiscoverQuery builds the discover parameters; only set constraints appear
func DiscoverQuery(criteria domain.FilterCriteria, page int) url.Values {
	query := url.Values{}
	query.Set("include_adult", "false")
	query.Set("sort_by", "popularity.desc")
	query.Set("page", strconv.Itoa(normalizePage(page)))

	if criteria.Year > 0 {
		query.Set("primary_release_year", strconv.Itoa(criteria.Year))
	}
	if code, ok := LanguageCode(criteria.Language); ok {
		query.Set("with_original_language", code)
	}
	if id, ok := GenreID(criteria.Genre); ok {
		query.Set("with_genres", id)
	}
	if criteria.MinRating != nil {
		query.Set("vote_average.gte", formatRating(*criteria.MinRating))
	}
	if criteria.MaxRating != nil {
		query.Set("vote_average.lte", formatRating(*criteria.MaxRating))
	}
	return query
}

// Details returns the full record with credits and videos in one request
func (c *Client) Details(ctx context.Context, id int) (*domain.MovieDetail, error) {
	if id <= 0 {
		return nil, domain.ErrMovieNotFound
	}

	query := url.Values{}
	query.Set("append_to_response", "credits,videos")

	body, err := c.doRequest(ctx, "/movie/"+itoa(id), query)
	var se *statusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return nil, fmt.Errorf("movie %d: %w", id, domain.ErrMovieNotFound)
	}
	if err != nil {
		return nil, err
	}

	var payload movieDetail
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse movie %d: %w", id, err)
	}
	return mapDetail(payload), nil
}

func (c *Client) getPage(ctx context.Context, path string, query url.Values) (domain.PageResult, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return domain.PageResult{}, err
	}

	var payload pageResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("JSON parse error", "path", path, "error", err, "bodyLen", len(body))
		return domain.PageResult{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return mapPage(payload), nil
}

// doRequest performs an authenticated GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	reqURL := c.baseURL.JoinPath(path)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path, "page", query.Get("page"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := statusMessage(body)
		if resp.StatusCode == http.StatusNotFound {
			c.logger.Info("tmdb resource not found", "path", path)
		} else {
			c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode, "message", msg)
		}
		return nil, &statusError{Code: resp.StatusCode, Message: msg}
	}

	return body, nil
}

func statusMessage(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.StatusMessage != "" {
		return e.StatusMessage
	}
	return "unexpected response"
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
