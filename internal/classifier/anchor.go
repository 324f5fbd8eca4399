package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"news_analytics/internal/config"
	"news_analytics/internal/domain"
)

var (
	positiveAnchors = []string{
		"Revolutionary breakthrough in electric vehicles",
		"Exciting new technology announced",
		"Major milestone achieved in sustainable energy",
		"Record breaking performance numbers",
		"Impressive sales figures announced",
	}
	negativeAnchors = []string{
		"Major setback for electric vehicle adoption",
		"Disappointing performance numbers revealed",
		"Concerning safety issues discovered",
		"Falling short of expectations",
		"Severe production delays announced",
	}
)

// AnchorClassifier scores a headline by comparing its embedding with fixed
// positive and negative anchor headlines.
type AnchorClassifier struct {
	api      *apiClient
	endpoint string
	model    string
	logger   *slog.Logger

	mu       sync.Mutex
	positive [][]float64
	negative [][]float64
}

func NewAnchorClassifier(cfg config.ClassifierConfig, logger *slog.Logger) (*AnchorClassifier, error) {
	api, err := newAPIClient(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.EmbeddingEndpoint == "" || cfg.EmbeddingModel == "" {
		return nil, errors.New("embedding classifier misconfigured")
	}

	return &AnchorClassifier{
		api:      api,
		endpoint: cfg.EmbeddingEndpoint,
		model:    cfg.EmbeddingModel,
		logger:   logger.With("component", "anchor_classifier"),
	}, nil
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (c *AnchorClassifier) Classify(ctx context.Context, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}

	positive, negative, err := c.anchors(ctx)
	if err != nil {
		return 0, err
	}

	vectors, err := c.embed(ctx, []string{text})
	if err != nil {
		return 0, err
	}

	score := domain.ClampScore((meanSimilarity(vectors[0], positive) - meanSimilarity(vectors[0], negative)) * 2)
	c.logger.Debug("headline classified", "score", score)
	return score, nil
}

// anchors embeds the anchor headlines once; a failed attempt is retried on
// the next call.
func (c *AnchorClassifier) anchors(ctx context.Context) ([][]float64, [][]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.positive != nil {
		return c.positive, c.negative, nil
	}

	inputs := append(append([]string{}, positiveAnchors...), negativeAnchors...)
	vectors, err := c.embed(ctx, inputs)
	if err != nil {
		return nil, nil, fmt.Errorf("embed anchors: %w", err)
	}

	c.positive = vectors[:len(positiveAnchors)]
	c.negative = vectors[len(positiveAnchors):]
	c.logger.Info("anchor embeddings loaded", "count", len(vectors))
	return c.positive, c.negative, nil
}

func (c *AnchorClassifier) embed(ctx context.Context, inputs []string) ([][]float64, error) {
	var resp embeddingResponse
	if err := c.api.post(ctx, c.endpoint, embeddingRequest{Model: c.model, Input: inputs}, &resp); err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(inputs), len(resp.Data))
	}

	vectors := make([][]float64, len(inputs))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

func meanSimilarity(v []float64, anchors [][]float64) float64 {
	if len(anchors) == 0 {
		return 0
	}
	var sum float64
	for _, a := range anchors {
		sum += cosine(v, a)
	}
	return sum / float64(len(anchors))
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
