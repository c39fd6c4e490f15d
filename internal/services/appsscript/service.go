// Package appsscript triggers the Apps Script web app that emails the
// published meal plan. The web app reads the spreadsheet itself, so the
// trigger is a bare GET with no payload.
package appsscript

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mealbot/internal/config"
)

const userAgent = "mealbot/0.1.0"

// Service defines the email trigger surface exposed to the planner.
type Service interface {
	TriggerEmail(ctx context.Context) error
}

// NewService builds an email trigger backed by the configured Apps Script
// web app. When no trigger URL is configured, a noop implementation is
// returned.
func NewService(cfg *config.Config) Service {
	endpoint := strings.TrimSpace(cfg.Email.TriggerURL)
	if endpoint == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Email.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &webAppService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type webAppService struct {
	endpoint string
	client   *http.Client
}

// NewWebAppService constructs a trigger against an explicit endpoint,
// mainly for tests.
func NewWebAppService(endpoint string, client *http.Client) Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &webAppService{endpoint: endpoint, client: client}
}

func (s *webAppService) TriggerEmail(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return fmt.Errorf("build email trigger request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("trigger email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email trigger returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) TriggerEmail(context.Context) error { return nil }
