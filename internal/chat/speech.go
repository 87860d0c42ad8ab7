package chat

import (
	"safesteps/internal/capability"
	"safesteps/internal/notice"
)

// ListenDirective configures a one-shot recognition session on the client.
type ListenDirective struct {
	Lang           string
	Continuous     bool
	InterimResults bool
}

// Listen decides whether the client can start speech input. Without a recognizer the
// visitor gets an error notice and nothing starts.
func Listen(client capability.Client) (*ListenDirective, *notice.Notice) {
	if !client.Has(capability.SpeechRecognition) {
		return nil, notice.New(notice.Error, "Speech recognition not supported in this browser.")
	}
	return &ListenDirective{Lang: "en-US"}, nil
}

// RecognitionEvent maps a client-reported recognition signal onto a transcript event.
func RecognitionEvent(signal, transcript string) (Event, bool) {
	switch signal {
	case "start":
		return Event{Kind: RecognitionStart}, true
	case "result":
		return Event{Kind: RecognitionResult, Text: transcript}, true
	case "error":
		return Event{Kind: RecognitionError}, true
	case "end":
		return Event{Kind: RecognitionEnd}, true
	}
	return Event{}, false
}
