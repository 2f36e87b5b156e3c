package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the remote catalog the UI and CLI depend on.
type API interface {
	FetchCategories(ctx context.Context, filter Filter, page, limit int) (CategoryPage, error)
	FetchExercises(ctx context.Context, query ExerciseQuery) (ExercisePage, error)
	FetchExercise(ctx context.Context, id string) (*Exercise, error)
	FetchExercisesByID(ctx context.Context, ids []string) []*Exercise
	Rate(ctx context.Context, id string, req RatingRequest) error
	Subscribe(ctx context.Context, email string) error
	FetchQuote(ctx context.Context) (Quote, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
	parallel  int
}

const (
	// DefaultBaseURL is the public catalog host.
	DefaultBaseURL   = "https://your-energy.b.goit.study/api"
	defaultUserAgent = "yourenergy/0.1"
	requestTimeout   = 10 * time.Second
	detailParallel   = 4
)

// APIError reports a non-2xx response.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient builds a Client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		log:       zap.NewNop(),
		parallel:  detailParallel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchCategories lists categories of a filter.
func (c *Client) FetchCategories(ctx context.Context, filter Filter, page, limit int) (CategoryPage, error) {
	values := url.Values{}
	setIfPresent(values, "filter", string(filter))
	setPositive(values, "page", page)
	setPositive(values, "limit", limit)

	var payload CategoryPage
	if err := c.do(ctx, http.MethodGet, "filters", values, nil, &payload); err != nil {
		return CategoryPage{}, err
	}
	return payload, nil
}

// FetchExercises lists exercises of a category, optionally narrowed by keyword.
func (c *Client) FetchExercises(ctx context.Context, query ExerciseQuery) (ExercisePage, error) {
	values := url.Values{}
	if category := strings.TrimSpace(query.Category); category != "" {
		values.Set(query.Filter.Param(), category)
	}
	setIfPresent(values, "keyword", query.Keyword)
	setPositive(values, "page", query.Page)
	setPositive(values, "limit", query.Limit)

	var payload ExercisePage
	if err := c.do(ctx, http.MethodGet, "exercises", values, nil, &payload); err != nil {
		return ExercisePage{}, err
	}
	return payload, nil
}

// FetchExercise retrieves one exercise.
func (c *Client) FetchExercise(ctx context.Context, id string) (*Exercise, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("exercise id required")
	}
	var payload Exercise
	if err := c.do(ctx, http.MethodGet, "exercises/"+url.PathEscape(id), nil, nil, &payload); err != nil {
		return nil, err
	}
	if payload.ID == "" {
		payload.ID = id
	}
	return &payload, nil
}

// FetchExercisesByID retrieves several exercises concurrently. The result is
// index-aligned with ids; an exercise that failed to load is nil.
func (c *Client) FetchExercisesByID(ctx context.Context, ids []string) []*Exercise {
	out := make([]*Exercise, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.parallel))
	for i, id := range ids {
		g.Go(func() error {
			ex, err := c.FetchExercise(gctx, id)
			if err != nil {
				c.log.Warn("favorite detail fetch failed", zap.String("id", id), zap.Error(err))
				return nil
			}
			out[i] = ex
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Rate submits a rating for an exercise.
func (c *Client) Rate(ctx context.Context, id string, req RatingRequest) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("exercise id required")
	}
	return c.do(ctx, http.MethodPatch, "exercises/"+url.PathEscape(id)+"/rating", nil, req, nil)
}

// Subscribe registers an email for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: strings.TrimSpace(email)}
	return c.do(ctx, http.MethodPost, "subscription", nil, body, nil)
}

// FetchQuote retrieves the quote of the day.
func (c *Client) FetchQuote(ctx context.Context) (Quote, error) {
	var payload Quote
	if err := c.do(ctx, http.MethodGet, "quote", nil, nil, &payload); err != nil {
		return Quote{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("build request path: %w", err)
	}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("path", "/"+path), zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", "/"+path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = "request failed: " + strconv.Itoa(resp.StatusCode)
		}
		return &APIError{Method: method, Path: "/" + path, Status: resp.StatusCode, Message: msg}
	}
	if dest == nil {
		// Mutating endpoints may answer with an empty body.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode response: empty body")
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func setIfPresent(values url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		values.Set(key, v)
	}
}

func setPositive(values url.Values, key string, n int) {
	if n > 0 {
		values.Set(key, strconv.Itoa(n))
	}
}

// parseBaseURL normalises the API root so relative paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
