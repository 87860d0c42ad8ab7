package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"safesteps/internal/models/response_models"
	"safesteps/internal/notice"
	"safesteps/internal/quiz"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/utils"
)

type QuizServiceInterface interface {
	StartSession(ctx context.Context) (*response_models.QuizSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	SelectOption(ctx context.Context, sessionID string, option int) (*response_models.QuizSessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Next(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
	Reset(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error)
}

// QuizObserver is told about every finished quiz.
type QuizObserver interface {
	QuizCompleted(feedback string)
}

type QuizService struct {
	questions []quiz.Question
	sessions  mem.SessionStore[quiz.Session]
	observer  QuizObserver
}

func NewQuizService(catalogs *Catalogs, sessions mem.SessionStore[quiz.Session], observer QuizObserver) QuizServiceInterface {
	return &QuizService{
		questions: catalogs.Questions,
		sessions:  sessions,
		observer:  observer,
	}
}

func (q *QuizService) StartSession(ctx context.Context) (*response_models.QuizSessionResponse, error) {
	id := uuid.NewString()
	s := quiz.NewSession(len(q.questions))
	q.sessions.Create(id, s)
	return q.view(id, s, nil), nil
}

func (q *QuizService) GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	s, ok := q.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}
	return q.view(sessionID, s, nil), nil
}

func (q *QuizService) SelectOption(ctx context.Context, sessionID string, option int) (*response_models.QuizSessionResponse, error) {
	return q.apply(sessionID, quiz.Select(option))
}

func (q *QuizService) Submit(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return q.apply(sessionID, quiz.Submit())
}

func (q *QuizService) Next(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return q.apply(sessionID, quiz.Next())
}

func (q *QuizService) Reset(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	return q.apply(sessionID, quiz.Reset())
}

func (q *QuizService) apply(sessionID string, e quiz.Event) (*response_models.QuizSessionResponse, error) {
	var (
		n        *notice.Notice
		finished bool
	)
	s, ok := q.sessions.Update(sessionID, func(cur quiz.Session) quiz.Session {
		next, out := quiz.Reduce(q.questions, cur, e)
		n = out
		finished = !cur.Completed && next.Completed
		return next
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrSessionNotFound, sessionID)
	}

	if finished && q.observer != nil {
		q.observer.QuizCompleted(quiz.Summarize(s.FinalScore, len(q.questions)).Feedback)
	}
	return q.view(sessionID, s, n), nil
}

func (q *QuizService) view(sessionID string, s quiz.Session, n *notice.Notice) *response_models.QuizSessionResponse {
	total := len(q.questions)
	resp := &response_models.QuizSessionResponse{
		SessionID:  sessionID,
		Index:      s.Index,
		Total:      total,
		Selected:   s.Selected,
		Revealed:   s.Revealed,
		Score:      s.Score,
		ScoreLabel: quiz.ScoreLabel(s),
		Progress:   quiz.Progress(s, total),
		Answered:   s.AnsweredCount(),
		Completed:  s.Completed,
		Notice:     n,
	}

	if s.Completed {
		sum := quiz.Summarize(s.FinalScore, total)
		resp.Summary = &response_models.QuizSummaryResponse{
			FinalScore: sum.FinalScore,
			Total:      sum.Total,
			Percentage: sum.Percentage,
			Feedback:   sum.Feedback,
			Strengths:  sum.Strengths,
			FocusAreas: sum.FocusAreas,
		}
		return resp
	}

	question := q.questions[s.Index]
	view := &response_models.QuestionView{
		ID:         question.ID,
		Text:       question.Text,
		Options:    question.Options,
		Category:   question.Category,
		Difficulty: string(question.Difficulty),
	}
	if s.Revealed {
		answer := question.CorrectAnswer
		view.CorrectAnswer = &answer
		view.Explanation = question.Explanation
		if s.Selected != nil {
			correct := *s.Selected == answer
			resp.Correct = &correct
		}
	}
	resp.Question = view
	return resp
}
