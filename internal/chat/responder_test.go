package chat_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safesteps/internal/catalog"
	"safesteps/internal/chat"
)

type recordingObserver struct {
	mu      sync.Mutex
	replies []string
}

func (r *recordingObserver) ObserveReply(strategy, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, strategy+":"+outcome)
}

func earthquakeAnswer() string { return catalog.CannedAnswers[0].Text }

func TestKeywordResponder_Earthquake(t *testing.T) {
	r := chat.NewKeywordResponder(catalog.CannedAnswers, chat.DefaultFallback, nil)

	inputs := []string{
		"earthquake",
		"What should I do during an EARTHQUAKE?",
		"my house shook, was that an earthquake or a truck",
		"Earthquake and tsunami together?",
		"earthquakes",
	}
	for _, in := range inputs {
		assert.Equal(t, earthquakeAnswer(), r.Respond(context.Background(), in), in)
	}
}

func TestKeywordResponder_FirstMatchWins(t *testing.T) {
	r := chat.NewKeywordResponder(catalog.CannedAnswers, chat.DefaultFallback, nil)

	// "tsunami" appears first in the text but "earthquake" is declared first
	got := r.Respond(context.Background(), "tsunami after an earthquake")
	assert.Equal(t, earthquakeAnswer(), got)

	got = r.Respond(context.Background(), "fire safety kit vs emergency kit")
	assert.Equal(t, catalog.CannedAnswers[1].Text, got)
}

func TestKeywordResponder_Fallback(t *testing.T) {
	obs := &recordingObserver{}
	r := chat.NewKeywordResponder(catalog.CannedAnswers, chat.DefaultFallback, obs)

	assert.Equal(t, chat.DefaultFallback, r.Respond(context.Background(), "How do I bake bread?"))
	assert.Equal(t, chat.DefaultFallback, r.Respond(context.Background(), "fire"))
	r.Respond(context.Background(), "heart attack")

	assert.Equal(t, []string{"keyword:fallback", "keyword:fallback", "keyword:matched"}, obs.replies)
}

func TestDelayed(t *testing.T) {
	r := chat.Delayed{
		Inner: chat.NewKeywordResponder(catalog.CannedAnswers, chat.DefaultFallback, nil),
		Delay: 20 * time.Millisecond,
	}
	assert.Equal(t, "keyword", r.Name())

	start := time.Now()
	got := r.Respond(context.Background(), "tsunami")
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, catalog.CannedAnswers[3].Text, got)
}

func TestDelayed_CancelledContextStillAnswers(t *testing.T) {
	r := chat.Delayed{
		Inner: chat.NewKeywordResponder(catalog.CannedAnswers, chat.DefaultFallback, nil),
		Delay: time.Hour,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, earthquakeAnswer(), r.Respond(ctx, "earthquake"))
}
