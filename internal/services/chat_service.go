package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"safesteps/internal/capability"
	"safesteps/internal/chat"
	"safesteps/internal/models/response_models"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/utils"
)

type ChatServiceInterface interface {
	OpenSession(ctx context.Context) (*response_models.TranscriptResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response_models.TranscriptResponse, error)
	// SendMessage appends the visitor's message, waits for SafeBot and appends the
	// reply. Blank text leaves the transcript untouched.
	SendMessage(ctx context.Context, sessionID, text string, client capability.Client) (*response_models.ChatTurnResponse, error)
	ToggleSpeech(ctx context.Context, sessionID string) (*response_models.TranscriptResponse, error)
	Listen(ctx context.Context, sessionID string, client capability.Client) (*response_models.ListenResponse, error)
	Recognition(ctx context.Context, sessionID, signal, transcript string, client capability.Client) (*response_models.ChatTurnResponse, error)
	QuickQuestions() []string
}

type ChatService struct {
	responder      chat.Responder
	sessions       mem.SessionStore[chat.Transcript]
	quickQuestions []string
	logger         *zap.Logger
	now            func() time.Time
}

func NewChatService(
	responder chat.Responder,
	sessions mem.SessionStore[chat.Transcript],
	quickQuestions []string,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		responder:      responder,
		sessions:       sessions,
		quickQuestions: quickQuestions,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *ChatService) OpenSession(ctx context.Context) (*response_models.TranscriptResponse, error) {
	id := uuid.NewString()
	t := chat.NewTranscript(uuid.NewString(), s.now())
	s.sessions.Create(id, t)
	return s.view(id, t), nil
}

func (s *ChatService) GetSession(ctx context.Context, sessionID string) (*response_models.TranscriptResponse, error) {
	t, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return s.view(sessionID, t), nil
}

func (s *ChatService) SendMessage(ctx context.Context, sessionID, text string, client capability.Client) (*response_models.ChatTurnResponse, error) {
	accepted := false
	t, ok := s.sessions.Update(sessionID, func(cur chat.Transcript) chat.Transcript {
		next, _ := chat.Reduce(cur, chat.Event{Kind: chat.SendEvent, Text: text, ID: uuid.NewString(), At: s.now()}, client)
		accepted = len(next.Messages) > len(cur.Messages)
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	if !accepted {
		return &response_models.ChatTurnResponse{Transcript: *s.view(sessionID, t), Effects: []response_models.EffectResponse{}}, nil
	}

	// The reply is delivered even if the caller goes away; delegated responders
	// bound the wait themselves.
	question := t.Messages[len(t.Messages)-1].Text
	reply := s.responder.Respond(context.WithoutCancel(ctx), question)

	var effects []chat.Effect
	t, ok = s.sessions.Update(sessionID, func(cur chat.Transcript) chat.Transcript {
		next, out := chat.Reduce(cur, chat.Event{Kind: chat.ResolveEvent, Text: reply, ID: uuid.NewString(), At: s.now()}, client)
		effects = out
		return next
	})
	if !ok {
		s.logger.Warn("chat session expired before the reply arrived", zap.String("session_id", sessionID))
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}

	return &response_models.ChatTurnResponse{Transcript: *s.view(sessionID, t), Effects: toEffects(effects)}, nil
}

func (s *ChatService) ToggleSpeech(ctx context.Context, sessionID string) (*response_models.TranscriptResponse, error) {
	t, ok := s.sessions.Update(sessionID, func(cur chat.Transcript) chat.Transcript {
		next, _ := chat.Reduce(cur, chat.Event{Kind: chat.ToggleSpeechEvent}, capability.Client{})
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return s.view(sessionID, t), nil
}

func (s *ChatService) Listen(ctx context.Context, sessionID string, client capability.Client) (*response_models.ListenResponse, error) {
	if _, ok := s.sessions.Get(sessionID); !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}

	directive, n := chat.Listen(client)
	resp := &response_models.ListenResponse{Notice: n}
	if directive != nil {
		resp.Directive = &response_models.ListenDirectiveResponse{
			Lang:           directive.Lang,
			Continuous:     directive.Continuous,
			InterimResults: directive.InterimResults,
		}
	}
	return resp, nil
}

func (s *ChatService) Recognition(ctx context.Context, sessionID, signal, transcript string, client capability.Client) (*response_models.ChatTurnResponse, error) {
	e, valid := chat.RecognitionEvent(signal, transcript)
	if !valid {
		return nil, fmt.Errorf("%w: recognition signal %q", utils.ErrInvalidInput, signal)
	}

	var effects []chat.Effect
	t, ok := s.sessions.Update(sessionID, func(cur chat.Transcript) chat.Transcript {
		next, out := chat.Reduce(cur, e, client)
		effects = out
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return &response_models.ChatTurnResponse{Transcript: *s.view(sessionID, t), Effects: toEffects(effects)}, nil
}

func (s *ChatService) QuickQuestions() []string {
	return append([]string(nil), s.quickQuestions...)
}

func (s *ChatService) view(sessionID string, t chat.Transcript) *response_models.TranscriptResponse {
	resp := &response_models.TranscriptResponse{
		SessionID:     sessionID,
		Strategy:      s.responder.Name(),
		Messages:      make([]response_models.MessageResponse, 0, len(t.Messages)),
		Loading:       t.Loading(),
		SpeechEnabled: t.SpeechEnabled,
		Listening:     t.Listening,
		Draft:         t.Draft,
	}
	for _, m := range t.Messages {
		resp.Messages = append(resp.Messages, response_models.MessageResponse{
			ID:        m.ID,
			Text:      m.Text,
			IsUser:    m.IsUser,
			Timestamp: utils.FormatRFC3339(m.Timestamp),
			Time:      utils.FormatClock(m.Timestamp),
		})
	}
	return resp
}

func toEffects(effects []chat.Effect) []response_models.EffectResponse {
	out := make([]response_models.EffectResponse, 0, len(effects))
	for _, e := range effects {
		out = append(out, response_models.EffectResponse{
			Kind:   string(e.Kind),
			Text:   e.Text,
			Rate:   e.Rate,
			Pitch:  e.Pitch,
			Notice: e.Notice,
		})
	}
	return out
}
