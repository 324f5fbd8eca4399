package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
)

const defaultSystemPrompt = "You rate the sentiment of news headlines about electric vehicles. " +
	"Reply with a single number between -1 (very negative) and 1 (very positive) and nothing else."

var scorePattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ChatClassifier asks a chat-completion model for a numeric score.
type ChatClassifier struct {
	api          *apiClient
	endpoint     string
	model        string
	systemPrompt string
	logger       *slog.Logger
}

func NewChatClassifier(cfg config.ClassifierConfig, logger *slog.Logger) (*ChatClassifier, error) {
	api, err := newAPIClient(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" || cfg.Model == "" {
		return nil, errors.New("chat classifier misconfigured")
	}

	prompt := strings.TrimSpace(cfg.SystemPrompt)
	if prompt == "" {
		prompt = defaultSystemPrompt
	}

	return &ChatClassifier{
		api:          api,
		endpoint:     cfg.Endpoint,
		model:        cfg.Model,
		systemPrompt: prompt,
		logger:       logger.With("component", "chat_classifier"),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *ChatClassifier) Classify(ctx context.Context, text string) (float64, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: text},
		},
	}

	var resp chatResponse
	if err := c.api.post(ctx, c.endpoint, req, &resp); err != nil {
		return 0, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, errors.New("chat completion returned no choices")
	}

	score, err := parseScore(resp.Choices[0].Message.Content)
	if err != nil {
		return 0, err
	}

	c.logger.Debug("headline classified", "score", score)
	return score, nil
}

// parseScore takes the first number in a model reply.
func parseScore(reply string) (float64, error) {
	match := scorePattern.FindString(reply)
	if match == "" {
		return 0, fmt.Errorf("no score in reply %q", reply)
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", match, err)
	}
	return domain.ClampScore(v), nil
}
