package chat

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerConfig controls when a delegated responder stops calling its provider.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func newBreaker(name string, cfg BreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// delegate runs call through the breaker and a bounded timeout, mapping every failure
// to ErrorFallback.
type delegate struct {
	name     string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	logger   *zap.Logger
	observer Observer
}

func (d *delegate) run(ctx context.Context, call func(context.Context) (string, error)) string {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	out, err := d.breaker.Execute(func() (interface{}, error) {
		return call(ctx)
	})
	if err != nil {
		d.logger.Warn("generative text call failed", zap.String("provider", d.name), zap.Error(err))
		d.observe(OutcomeError)
		return ErrorFallback
	}
	d.observe(OutcomeOK)
	return out.(string)
}

func (d *delegate) observe(outcome string) {
	if d.observer != nil {
		d.observer.ObserveReply(d.name, outcome)
	}
}
