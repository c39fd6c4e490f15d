package gdocs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mealbot/internal/config"
	"mealbot/internal/recipe"
)

const (
	defaultBaseURL     = "https://docs.googleapis.com/v1"
	defaultHTTPTimeout = 30 * time.Second
)

// Service defines the document surface exposed to the planner. The
// returned URL points at the created document, or is empty when document
// creation is disabled.
type Service interface {
	CreateMealPlan(ctx context.Context, records []recipe.Record) (string, error)
}

// NewService builds a document service backed by the Docs API when the
// collaborator is enabled. Otherwise a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if !cfg.Docs.Enabled || strings.TrimSpace(cfg.Docs.APIToken) == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Docs.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return NewClient(cfg.Docs.APIToken,
		WithBaseURL(cfg.Docs.BaseURL),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	)
}

// Client wraps the Google Docs API.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// Option customizes the Docs client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithClock overrides the time source used for the document title.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient constructs a Docs API client.
func NewClient(apiToken string, opts ...Option) *Client {
	client := &Client{
		apiToken:   strings.TrimSpace(apiToken),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

type insertTextRequest struct {
	InsertText struct {
		Location struct {
			Index int `json:"index"`
		} `json:"location"`
		Text string `json:"text"`
	} `json:"insertText"`
}

func insertAt(index int, text string) insertTextRequest {
	var req insertTextRequest
	req.InsertText.Location.Index = index
	req.InsertText.Text = text
	return req
}

// CreateMealPlan creates a dated document holding the selection and
// returns its URL.
func (c *Client) CreateMealPlan(ctx context.Context, records []recipe.Record) (string, error) {
	if len(records) == 0 {
		return "", errors.New("docs create: no recipes to publish")
	}

	now := c.now()
	docID, err := c.createDocument(ctx, DocumentTitle(now))
	if err != nil {
		return "", err
	}

	heading := buildHeading(now)
	requests := []insertTextRequest{insertAt(1, heading)}
	index := 1 + len([]rune(heading))
	for i, record := range records {
		block := buildRecipeBlock(i+1, record)
		requests = append(requests, insertAt(index, block))
		index += len([]rune(block))
	}

	if err := c.batchUpdate(ctx, docID, requests); err != nil {
		return "", err
	}
	return "https://docs.google.com/document/d/" + docID + "/edit", nil
}

func (c *Client) createDocument(ctx context.Context, title string) (string, error) {
	endpoint, err := url.JoinPath(c.baseURL, "documents")
	if err != nil {
		return "", fmt.Errorf("docs create: build url: %w", err)
	}
	encoded, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return "", fmt.Errorf("docs create: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("docs create: request: %w", err)
	}

	body, err := c.send(req, "docs create")
	if err != nil {
		return "", err
	}

	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("docs create: decode response: %w", err)
	}
	if strings.TrimSpace(created.DocumentID) == "" {
		return "", errors.New("docs create: empty document id")
	}
	return created.DocumentID, nil
}

func (c *Client) batchUpdate(ctx context.Context, docID string, requests []insertTextRequest) error {
	endpoint, err := url.JoinPath(c.baseURL, "documents", docID+":batchUpdate")
	if err != nil {
		return fmt.Errorf("docs update: build url: %w", err)
	}
	encoded, err := json.Marshal(map[string]any{"requests": requests})
	if err != nil {
		return fmt.Errorf("docs update: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("docs update: request: %w", err)
	}
	_, err = c.send(req, "docs update")
	return err
}

func (c *Client) send(req *http.Request, operation string) ([]byte, error) {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", operation, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: http %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

type noopService struct{}

func (noopService) CreateMealPlan(context.Context, []recipe.Record) (string, error) {
	return "", nil
}
