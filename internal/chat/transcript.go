// Package chat holds SafeBot's transcript and the strategies that answer questions.
//
// Transcript changes only through Reduce, which returns the effects a front-end should
// perform (speaking a reply, showing a notice) instead of performing them.
package chat

import (
	"strings"
	"time"

	"safesteps/internal/capability"
	"safesteps/internal/notice"
)

const Greeting = "Hi! I'm SafeBot, your AI disaster preparedness assistant. Ask me about emergency procedures, safety tips, or anything related to disaster management!"

type Message struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time
}

type Transcript struct {
	Messages      []Message
	Pending       int
	SpeechEnabled bool
	Listening     bool
	Draft         string
}

// NewTranscript starts a conversation with the greeting already in place.
func NewTranscript(greetingID string, at time.Time) Transcript {
	return Transcript{
		Messages:      []Message{{ID: greetingID, Text: Greeting, Timestamp: at}},
		SpeechEnabled: true,
	}
}

func (t Transcript) Loading() bool { return t.Pending > 0 }

type EventKind string

const (
	SendEvent         EventKind = "send"
	ResolveEvent      EventKind = "resolve"
	ToggleSpeechEvent EventKind = "toggle_speech"

	RecognitionStart  EventKind = "recognition_start"
	RecognitionResult EventKind = "recognition_result"
	RecognitionError  EventKind = "recognition_error"
	RecognitionEnd    EventKind = "recognition_end"
)

type Event struct {
	Kind EventKind
	Text string
	ID   string
	At   time.Time
}

type EffectKind string

const (
	SpeakEffect  EffectKind = "speak"
	NotifyEffect EffectKind = "notify"
)

type Effect struct {
	Kind   EffectKind
	Text   string
	Rate   float64
	Pitch  float64
	Notice *notice.Notice
}

const (
	utteranceRate  = 0.9
	utterancePitch = 1.0
)

// Reduce applies e to t. Blank sends are ignored.
func Reduce(t Transcript, e Event, client capability.Client) (Transcript, []Effect) {
	t = t.clone()

	switch e.Kind {
	case SendEvent:
		text := strings.TrimSpace(e.Text)
		if text == "" {
			return t, nil
		}
		t.Messages = append(t.Messages, Message{ID: e.ID, Text: text, IsUser: true, Timestamp: e.At})
		t.Pending++
		t.Draft = ""
		return t, nil

	case ResolveEvent:
		t.Messages = append(t.Messages, Message{ID: e.ID, Text: e.Text, Timestamp: e.At})
		if t.Pending > 0 {
			t.Pending--
		}
		if t.SpeechEnabled && client.Has(capability.SpeechSynthesis) {
			return t, []Effect{{Kind: SpeakEffect, Text: e.Text, Rate: utteranceRate, Pitch: utterancePitch}}
		}
		return t, nil

	case ToggleSpeechEvent:
		t.SpeechEnabled = !t.SpeechEnabled
		return t, nil

	case RecognitionStart:
		t.Listening = true
		return t, []Effect{notify(notice.Info, "Listening... Speak now!")}

	case RecognitionResult:
		t.Draft = e.Text
		t.Listening = false
		return t, nil

	case RecognitionError:
		t.Listening = false
		return t, []Effect{notify(notice.Error, "Speech recognition error. Please try again.")}

	case RecognitionEnd:
		t.Listening = false
		return t, nil
	}

	return t, nil
}

func notify(level notice.Level, msg string) Effect {
	return Effect{Kind: NotifyEffect, Notice: notice.New(level, msg)}
}

func (t Transcript) clone() Transcript {
	out := t
	out.Messages = append([]Message(nil), t.Messages...)
	return out
}
