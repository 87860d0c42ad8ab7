package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIResponder struct {
	client chatCompleter
	model  string
	delegate
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Breaker BreakerConfig
}

func NewOpenAIResponder(cfg OpenAIConfig, logger *zap.Logger, observer Observer) (*OpenAIResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return newOpenAIResponder(openai.NewClientWithConfig(clientCfg), cfg, logger, observer), nil
}

func newOpenAIResponder(client chatCompleter, cfg OpenAIConfig, logger *zap.Logger, observer Observer) *OpenAIResponder {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	return &OpenAIResponder{
		client: client,
		model:  cfg.Model,
		delegate: delegate{
			name:     "openai",
			timeout:  cfg.Timeout,
			breaker:  newBreaker("openai", cfg.Breaker, logger),
			logger:   logger,
			observer: observer,
		},
	}
}

func (o *OpenAIResponder) Name() string { return "openai" }

func (o *OpenAIResponder) Respond(ctx context.Context, question string) string {
	return o.run(ctx, func(ctx context.Context) (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
		})
		if err != nil {
			return "", fmt.Errorf("openai: %w", err)
		}
		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			return "", errors.New("no content")
		}
		return resp.Choices[0].Message.Content, nil
	})
}
