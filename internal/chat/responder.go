package chat

import (
	"context"
	"strings"
	"time"
)

// Responder turns a visitor question into SafeBot's reply. Implementations never
// fail: anything that goes wrong is answered with a fixed fallback text.
type Responder interface {
	Respond(ctx context.Context, question string) string
	Name() string
}

// Observer is told how each reply was produced.
type Observer interface {
	ObserveReply(strategy, outcome string)
}

const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeOK       = "ok"
	OutcomeError    = "error"
)

const (
	DefaultFallback = "I'm here to help with disaster preparedness questions! Try asking about specific emergencies like earthquakes, fires, medical emergencies, or emergency planning. You can also ask about creating emergency kits or evacuation procedures."
	ErrorFallback   = "Sorry, there was an error connecting to the AI."
)

// Answer is one entry of the keyword table.
type Answer struct {
	Keyword string
	Text    string
}

type KeywordResponder struct {
	answers  []Answer
	fallback string
	observer Observer
}

// NewKeywordResponder answers from a fixed table. Keywords are matched in table
// order and the first one contained in the lower-cased question wins.
func NewKeywordResponder(answers []Answer, fallback string, observer Observer) *KeywordResponder {
	table := make([]Answer, len(answers))
	for i, a := range answers {
		table[i] = Answer{Keyword: strings.ToLower(a.Keyword), Text: a.Text}
	}
	return &KeywordResponder{answers: table, fallback: fallback, observer: observer}
}

func (k *KeywordResponder) Name() string { return "keyword" }

func (k *KeywordResponder) Respond(_ context.Context, question string) string {
	lower := strings.ToLower(question)
	for _, a := range k.answers {
		if strings.Contains(lower, a.Keyword) {
			k.observe(OutcomeMatched)
			return a.Text
		}
	}
	k.observe(OutcomeFallback)
	return k.fallback
}

func (k *KeywordResponder) observe(outcome string) {
	if k.observer != nil {
		k.observer.ObserveReply(k.Name(), outcome)
	}
}

// Delayed holds every reply back for a fixed time before asking the inner responder.
type Delayed struct {
	Inner Responder
	Delay time.Duration
}

func (d Delayed) Name() string { return d.Inner.Name() }

func (d Delayed) Respond(ctx context.Context, question string) string {
	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}
	return d.Inner.Respond(ctx, question)
}
