package chat_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"safesteps/internal/catalog"
	"safesteps/internal/chat"
	"safesteps/internal/config"
	"safesteps/internal/services"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/metrics"
)

var Module = fx.Provide(
	ProvideResponder,
	ProvideChatService)

// ProvideResponder picks SafeBot's answering strategy from chat.provider. The keyword
// table is the default and needs no credentials.
func ProvideResponder(
	lc fx.Lifecycle,
	cfg *config.Config,
	catalogs *services.Catalogs,
	collector *metrics.Collector,
	logger *zap.Logger,
) (chat.Responder, error) {
	logger.Info("Initializing chat responder", zap.String("provider", cfg.Chat.Provider))

	switch cfg.Chat.Provider {
	case config.ProviderGemini:
		r, err := chat.NewGeminiResponder(context.Background(), chat.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Chat.Timeout,
			Breaker: chat.DefaultBreakerConfig(),
		}, logger, collector)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini responder: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error { return r.Close() },
		})
		return r, nil

	case config.ProviderOpenAI:
		r, err := chat.NewOpenAIResponder(chat.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.Chat.Timeout,
			Breaker: chat.DefaultBreakerConfig(),
		}, logger, collector)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI responder: %w", err)
		}
		return r, nil

	default:
		return chat.Delayed{
			Inner: chat.NewKeywordResponder(catalogs.Answers, chat.DefaultFallback, collector),
			Delay: cfg.Chat.ResponseDelay,
		}, nil
	}
}

func ProvideChatService(
	responder chat.Responder,
	sessions mem.SessionStore[chat.Transcript],
	logger *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(responder, sessions, catalog.QuickQuestions, logger)
}
