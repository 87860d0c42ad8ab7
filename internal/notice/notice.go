// Package notice carries transient, user-facing notifications (toasts) produced by
// widget transitions.
package notice

type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Error   Level = "error"
)

type Notice struct {
	Level       Level  `json:"level"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func New(level Level, message string) *Notice {
	return &Notice{Level: level, Message: message}
}
