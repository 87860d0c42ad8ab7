package response_models

import "safesteps/internal/notice"

type MessageResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsUser    bool   `json:"is_user"`
	Timestamp string `json:"timestamp"`
	Time      string `json:"time"` // "15:04", as shown under the bubble
}

type EffectResponse struct {
	Kind   string         `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Rate   float64        `json:"rate,omitempty"`
	Pitch  float64        `json:"pitch,omitempty"`
	Notice *notice.Notice `json:"notice,omitempty"`
}

type TranscriptResponse struct {
	SessionID     string            `json:"session_id"`
	Strategy      string            `json:"strategy"`
	Messages      []MessageResponse `json:"messages"`
	Loading       bool              `json:"loading"`
	SpeechEnabled bool              `json:"speech_enabled"`
	Listening     bool              `json:"listening"`
	Draft         string            `json:"draft,omitempty"`
}

type ChatTurnResponse struct {
	Transcript TranscriptResponse `json:"transcript"`
	Effects    []EffectResponse   `json:"effects"`
}

type ListenDirectiveResponse struct {
	Lang           string `json:"lang"`
	Continuous     bool   `json:"continuous"`
	InterimResults bool   `json:"interim_results"`
}

type ListenResponse struct {
	Directive *ListenDirectiveResponse `json:"directive,omitempty"`
	Notice    *notice.Notice           `json:"notice,omitempty"`
}
