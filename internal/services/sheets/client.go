package sheets

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
	defaultBaseURL     = "https://sheets.googleapis.com/v4"
	defaultSheetName   = "Selected Recipes"
	defaultHTTPTimeout = 30 * time.Second
)

// Service defines the spreadsheet surface exposed to the planner.
type Service interface {
	WriteSelection(ctx context.Context, records []recipe.Record) error
}

// NewService builds a spreadsheet service backed by the Sheets API when a
// spreadsheet is configured. Otherwise a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if strings.TrimSpace(cfg.Sheets.SpreadsheetID) == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Sheets.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return NewClient(cfg.Sheets.SpreadsheetID, cfg.Sheets.APIToken,
		WithSheetName(cfg.Sheets.SheetName),
		WithBaseURL(cfg.Sheets.BaseURL),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	)
}

// Client wraps the Google Sheets values API.
type Client struct {
	spreadsheetID string
	sheetName     string
	apiToken      string
	baseURL       string
	httpClient    *http.Client
}

// Option customizes the Sheets client.
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

// WithSheetName overrides the worksheet the selection is written to.
func WithSheetName(name string) Option {
	return func(c *Client) {
		name = strings.TrimSpace(name)
		if name != "" {
			c.sheetName = name
		}
	}
}

// NewClient constructs a Sheets API client.
func NewClient(spreadsheetID, apiToken string, opts ...Option) *Client {
	client := &Client{
		spreadsheetID: strings.TrimSpace(spreadsheetID),
		sheetName:     defaultSheetName,
		apiToken:      strings.TrimSpace(apiToken),
		baseURL:       defaultBaseURL,
		httpClient:    &http.Client{Timeout: defaultHTTPTimeout},
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

type valueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values"`
}

// WriteSelection clears the configured worksheet and rewrites it from A1
// with a header row plus one row per recipe.
func (c *Client) WriteSelection(ctx context.Context, records []recipe.Record) error {
	if c.spreadsheetID == "" {
		return errors.New("sheets write: spreadsheet id required")
	}
	if len(records) == 0 {
		return errors.New("sheets write: no recipes to publish")
	}

	if err := c.clear(ctx); err != nil {
		return err
	}

	rangeRef := c.sheetName + "!A1"
	endpoint, err := url.JoinPath(c.baseURL, "spreadsheets", c.spreadsheetID, "values", rangeRef)
	if err != nil {
		return fmt.Errorf("sheets write: build url: %w", err)
	}
	endpoint += "?valueInputOption=RAW"

	body := valueRange{
		Range:          rangeRef,
		MajorDimension: "ROWS",
		Values:         BuildRows(records),
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("sheets write: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("sheets write: request: %w", err)
	}
	return c.send(req, "sheets write")
}

func (c *Client) clear(ctx context.Context) error {
	endpoint, err := url.JoinPath(c.baseURL, "spreadsheets", c.spreadsheetID, "values", c.sheetName+":clear")
	if err != nil {
		return fmt.Errorf("sheets clear: build url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("sheets clear: request: %w", err)
	}
	return c.send(req, "sheets clear")
}

func (c *Client) send(req *http.Request, operation string) error {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s: http %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) WriteSelection(context.Context, []recipe.Record) error { return nil }
