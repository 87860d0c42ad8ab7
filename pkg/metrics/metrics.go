// Package metrics exposes the service's Prometheus counters on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	ChatReplies      *prometheus.CounterVec
	QuizCompletions  *prometheus.CounterVec
	ChecklistToggles *prometheus.CounterVec
	ActiveSessions   *prometheus.GaugeVec
	SessionsEvicted  prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ChatReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_replies_total",
				Help:      "SafeBot replies by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		QuizCompletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quiz_completions_total",
				Help:      "Completed quizzes by feedback bucket",
			},
			[]string{"feedback"},
		),
		ChecklistToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checklist_toggles_total",
				Help:      "Checklist item toggles by category and direction",
			},
			[]string{"category", "state"},
		),
		ActiveSessions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_sessions",
				Help:      "Live widget sessions",
			},
			[]string{"widget"},
		),
		SessionsEvicted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_evicted_total",
				Help:      "Sessions dropped after their TTL expired",
			},
		),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.ChatReplies,
		c.QuizCompletions,
		c.ChecklistToggles,
		c.ActiveSessions,
		c.SessionsEvicted,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveReply records how a chat reply was produced.
func (c *Collector) ObserveReply(strategy, outcome string) {
	c.ChatReplies.WithLabelValues(strategy, outcome).Inc()
}

func (c *Collector) QuizCompleted(feedback string) {
	c.QuizCompletions.WithLabelValues(feedback).Inc()
}

func (c *Collector) ChecklistToggled(category string, completed bool) {
	state := "unchecked"
	if completed {
		state = "checked"
	}
	c.ChecklistToggles.WithLabelValues(category, state).Inc()
}

func (c *Collector) SetActiveSessions(widget string, n int) {
	c.ActiveSessions.WithLabelValues(widget).Set(float64(n))
}

func (c *Collector) SessionsSwept(n int) {
	c.SessionsEvicted.Add(float64(n))
}

// Middleware counts requests by matched route, so ids in the path do not explode
// label cardinality.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDuration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
