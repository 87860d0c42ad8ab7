package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// contentGenerator is the part of *genai.GenerativeModel the responder needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiResponder struct {
	client *genai.Client
	model  contentGenerator
	delegate
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Breaker BreakerConfig
}

func NewGeminiResponder(ctx context.Context, cfg GeminiConfig, logger *zap.Logger, observer Observer) (*GeminiResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(512)

	r := newGeminiResponder(model, cfg, logger, observer)
	r.client = client
	return r, nil
}

func newGeminiResponder(model contentGenerator, cfg GeminiConfig, logger *zap.Logger, observer Observer) *GeminiResponder {
	return &GeminiResponder{
		model: model,
		delegate: delegate{
			name:     "gemini",
			timeout:  cfg.Timeout,
			breaker:  newBreaker("gemini", cfg.Breaker, logger),
			logger:   logger,
			observer: observer,
		},
	}
}

func (g *GeminiResponder) Name() string { return "gemini" }

// Respond forwards the raw question and returns the first candidate's text.
func (g *GeminiResponder) Respond(ctx context.Context, question string) string {
	return g.run(ctx, func(ctx context.Context) (string, error) {
		resp, err := g.model.GenerateContent(ctx, genai.Text(question))
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}
		return firstCandidateText(resp)
	})
}

func (g *GeminiResponder) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("no content")
	}
	text, ok := content.Parts[0].(genai.Text)
	if !ok || strings.TrimSpace(string(text)) == "" {
		return "", errors.New("first part is not text")
	}
	return string(text), nil
}
