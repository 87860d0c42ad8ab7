package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"safesteps/internal/chat"
	"safesteps/internal/checklist"
	"safesteps/internal/config"
	"safesteps/internal/quiz"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/metrics"
)

var Module = fx.Options(
	fx.Provide(
		provideChatSessions,
		provideQuizSessions,
		provideChecklistSessions,
		func(s *mem.Sessions[chat.Transcript]) mem.SessionStore[chat.Transcript] { return s },
		func(s *mem.Sessions[quiz.Session]) mem.SessionStore[quiz.Session] { return s },
		func(s *mem.Sessions[checklist.State]) mem.SessionStore[checklist.State] { return s },
	),
	fx.Invoke(startJanitor),
)

func provideChatSessions(cfg *config.Config) *mem.Sessions[chat.Transcript] {
	return mem.NewSessions[chat.Transcript](cfg.Session.TTL)
}

func provideQuizSessions(cfg *config.Config) *mem.Sessions[quiz.Session] {
	return mem.NewSessions[quiz.Session](cfg.Session.TTL)
}

func provideChecklistSessions(cfg *config.Config) *mem.Sessions[checklist.State] {
	return mem.NewSessions[checklist.State](cfg.Session.TTL)
}

// startJanitor evicts expired sessions in the background for the lifetime of the app.
func startJanitor(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger *zap.Logger,
	collector *metrics.Collector,
	chatSessions *mem.Sessions[chat.Transcript],
	quizSessions *mem.Sessions[quiz.Session],
	checklistSessions *mem.Sessions[checklist.State],
) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	onSweep := func(removed int) {
		collector.SetActiveSessions("chat", chatSessions.Len())
		collector.SetActiveSessions("quiz", quizSessions.Len())
		collector.SetActiveSessions("checklist", checklistSessions.Len())
		if removed > 0 {
			collector.SessionsSwept(removed)
			logger.Debug("Expired sessions evicted", zap.Int("removed", removed))
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				mem.RunJanitor(ctx, cfg.Session.SweepPeriod, onSweep, chatSessions, quizSessions, checklistSessions)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
