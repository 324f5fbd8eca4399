// Package classifier scores headline sentiment through OpenAI-compatible APIs.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"news_analytics/internal/config"
)

var ErrMissingAPIKey = errors.New("classifier api key is not configured")

// New builds the classifier selected by cfg.Mode.
func New(cfg config.ClassifierConfig, logger *slog.Logger) (Classifier, error) {
	switch cfg.Mode {
	case "", "chat":
		return NewChatClassifier(cfg, logger)
	case "embedding":
		return NewAnchorClassifier(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown classifier mode %q", cfg.Mode)
	}
}

type Classifier interface {
	Classify(ctx context.Context, text string) (float64, error)
}

// apiClient posts JSON to an OpenAI-compatible endpoint at a bounded rate.
type apiClient struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func newAPIClient(cfg config.ClassifierConfig) (*apiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &apiClient{
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
	}, nil
}

func (c *apiClient) post(ctx context.Context, endpoint string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("api error %s: %s", resp.Status, strings.TrimSpace(string(excerpt)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
