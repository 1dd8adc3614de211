package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/furisto/gistpad/shared/conv"
	"github.com/furisto/gistpad/shared/resilience"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/maypok86/otter"
)

const (
	DefaultEndpoint = "https://api.github.com"

	apiVersion      = "2022-11-28"
	pageSize        = 100
	snapshotKey     = "gists"
	defaultTTL      = 30 * time.Second
	contentCapacity = 256
)

// Client is a Store backed by the GitHub gist REST API.
type Client struct {
	endpoint   *url.URL
	token      string
	userAgent  string
	httpClient *http.Client
	retry      resilience.RetryConfig
	breaker    *resilience.CircuitBreaker

	snapshotTTL time.Duration
	snapshots   otter.Cache[string, []Gist]
	contents    *lru.Cache[string, []byte]
}

type ClientOption func(*Client)

func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithRetryConfig(config resilience.RetryConfig) ClientOption {
	return func(c *Client) {
		c.retry = config
	}
}

func WithSnapshotTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.snapshotTTL = ttl
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func NewClient(endpoint string, options ...ClientOption) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	parsed, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}

	client := &Client{
		endpoint:    parsed,
		userAgent:   "gistpad",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		retry:       resilience.DefaultRetryConfig(),
		snapshotTTL: defaultTTL,
	}
	for _, option := range options {
		option(client)
	}
	if client.snapshotTTL <= 0 {
		client.snapshotTTL = defaultTTL
	}

	client.breaker = resilience.NewCircuitBreaker(parsed.Host, 5, 30*time.Second)

	client.snapshots, err = otter.MustBuilder[string, []Gist](16).
		WithTTL(client.snapshotTTL).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	client.contents, err = lru.New[string, []byte](contentCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create content cache: %w", err)
	}

	return client, nil
}

// ListGists lists the gists of the authenticated user. Anonymous callers
// would get every public gist of the server instead, so a client without a
// token fails with an unauthorized APIError and sends nothing.
func (c *Client) ListGists(ctx context.Context) ([]Gist, error) {
	if c.token == "" {
		return nil, &APIError{
			StatusCode: http.StatusUnauthorized,
			Method:     http.MethodGet,
			Path:       "/gists",
			Message:    "listing your gists requires a token",
		}
	}

	if gists, ok := c.snapshots.Get(snapshotKey); ok {
		return gists, nil
	}

	var gists []Gist
	for page := 1; ; page++ {
		var response []apiGist
		path := "/gists?per_page=" + strconv.Itoa(pageSize) + "&page=" + strconv.Itoa(page)
		if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
			return nil, err
		}

		for _, g := range response {
			gists = append(gists, g.toGist())
		}

		if len(response) < pageSize {
			break
		}
	}

	c.snapshots.Set(snapshotKey, gists)
	return gists, nil
}

func (c *Client) GetGist(ctx context.Context, id string) (*Gist, error) {
	var response apiGist
	if err := c.do(ctx, http.MethodGet, "/gists/"+url.PathEscape(id), nil, &response); err != nil {
		return nil, err
	}

	gist := response.toGist()
	return &gist, nil
}

func (c *Client) CreateGist(ctx context.Context, req CreateRequest) (*Gist, error) {
	description := req.Description
	if req.Notebook {
		description = strings.TrimSpace(description + " " + NotebookTag)
	}

	body := apiGistRequest{
		Description: description,
		Public:      conv.Ptr(req.Public),
		Files:       make(map[string]apiFileRequest, len(req.Files)),
	}
	for _, f := range req.Files {
		body.Files[f.Filename] = apiFileRequest{Content: f.Content}
	}

	var response apiGist
	if err := c.do(ctx, http.MethodPost, "/gists", body, &response); err != nil {
		return nil, err
	}
	c.snapshots.Delete(snapshotKey)

	gist := response.toGist()
	return &gist, nil
}

func (c *Client) ReadFile(ctx context.Context, uri URI) ([]byte, error) {
	gist, err := c.GetGist(ctx, uri.GistID)
	if err != nil {
		return nil, err
	}

	file, ok := gist.File(uri.Filename)
	if !ok {
		return nil, &FileNotFoundError{URI: uri}
	}

	if !file.Truncated || file.RawURL == "" {
		return []byte(file.Content), nil
	}

	// raw URLs carry the revision, so cached content never goes stale
	if content, ok := c.contents.Get(file.RawURL); ok {
		return content, nil
	}

	content, err := c.fetchRaw(ctx, file.RawURL)
	if err != nil {
		return nil, err
	}
	c.contents.Add(file.RawURL, content)

	return content, nil
}

func (c *Client) WriteFile(ctx context.Context, uri URI, content []byte) error {
	body := apiGistRequest{
		Files: map[string]apiFileRequest{
			uri.Filename: {Content: string(content)},
		},
	}

	err := c.do(ctx, http.MethodPatch, "/gists/"+url.PathEscape(uri.GistID), body, nil)
	c.snapshots.Delete(snapshotKey)
	return err
}

func (c *Client) DeleteGist(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/gists/"+url.PathEscape(id), nil, nil)
	c.snapshots.Delete(snapshotKey)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.breaker.Check(); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	send := func() ([]byte, error) {
		return c.send(ctx, method, c.endpoint.String()+path, payload, true)
	}

	var (
		response []byte
		err      error
	)
	// creating is not idempotent, a retried POST could create a second gist
	if method == http.MethodPost {
		response, err = send()
	} else {
		response, err = resilience.Retry(ctx, c.retry, retryLogger{method: method, path: path}, send)
	}
	c.breaker.RecordResult(breakerResult(err))
	if err != nil {
		return err
	}

	if out == nil || len(response) == 0 {
		return nil
	}
	if err := json.Unmarshal(response, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) fetchRaw(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid raw url %q: %w", rawURL, err)
	}

	return resilience.Retry(ctx, c.retry, retryLogger{method: http.MethodGet, path: parsed.Path}, func() ([]byte, error) {
		return c.send(ctx, http.MethodGet, rawURL, nil, parsed.Host == c.endpoint.Host)
	})
}

func (c *Client) send(ctx context.Context, method, target string, payload []byte, authenticate bool) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticate && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &resilience.RetryableError{Err: fmt.Errorf("%s %s: %w", method, req.URL.Path, err)}
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &resilience.RetryableError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return content, nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       req.URL.Path,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}

	var errorBody struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if json.Unmarshal(content, &errorBody) == nil {
		apiErr.Message = errorBody.Message
		apiErr.DocumentationURL = errorBody.DocumentationURL
	}

	if apiErr.Temporary() {
		return nil, &resilience.RetryableError{Err: apiErr, RetryAfter: apiErr.RetryAfter}
	}
	return nil, apiErr
}

func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// breakerResult only counts failures that say something about the health of
// the endpoint; 4xx answers mean the API is up.
func breakerResult(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type retryLogger struct {
	method string
	path   string
}

func (l retryLogger) OnRetryAttempt(ctx context.Context, attempt uint, err error, nextDelay time.Duration) {
	slog.DebugContext(ctx, "retrying gist api request", "method", l.method, "path", l.path, "attempt", attempt, "delay", nextDelay, "error", err)
}

func (l retryLogger) OnRetrySuccess(ctx context.Context, attempts uint, totalDuration time.Duration) {
	slog.DebugContext(ctx, "gist api request succeeded after retry", "method", l.method, "path", l.path, "attempts", attempts, "duration", totalDuration)
}

func (l retryLogger) OnRetryFailure(ctx context.Context, err error, attempts uint, totalDuration time.Duration) {
	slog.DebugContext(ctx, "gist api request failed", "method", l.method, "path", l.path, "attempts", attempts, "duration", totalDuration, "error", err)
}

const NotebookTag = "#notebook"

type apiGist struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Public      bool               `json:"public"`
	HTMLURL     string             `json:"html_url"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Owner       *apiOwner          `json:"owner"`
	Files       map[string]apiFile `json:"files"`
}

type apiOwner struct {
	Login string `json:"login"`
}

type apiFile struct {
	Filename  string `json:"filename"`
	Language  string `json:"language"`
	RawURL    string `json:"raw_url"`
	Size      int    `json:"size"`
	Truncated bool   `json:"truncated"`
	Content   string `json:"content"`
}

type apiGistRequest struct {
	Description string                    `json:"description,omitempty"`
	Public      *bool                     `json:"public,omitempty"`
	Files       map[string]apiFileRequest `json:"files"`
}

type apiFileRequest struct {
	Content string `json:"content"`
}

func (g apiGist) toGist() Gist {
	gist := Gist{
		ID:          g.ID,
		Description: g.Description,
		Public:      g.Public,
		HTMLURL:     g.HTMLURL,
		UpdatedAt:   g.UpdatedAt,
		Owner:       conv.Value(g.Owner).Login,
		Files:       make([]File, 0, len(g.Files)),
	}

	for name, f := range g.Files {
		filename := f.Filename
		if filename == "" {
			filename = name
		}
		gist.Files = append(gist.Files, File{
			Filename:  filename,
			Language:  f.Language,
			RawURL:    f.RawURL,
			Size:      f.Size,
			Truncated: f.Truncated,
			Content:   f.Content,
		})
	}

	sort.Slice(gist.Files, func(i, j int) bool {
		return gist.Files[i].Filename < gist.Files[j].Filename
	})

	return gist
}

var _ Store = (*Client)(nil)
