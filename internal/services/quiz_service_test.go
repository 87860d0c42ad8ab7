package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safesteps/internal/catalog"
	"safesteps/internal/notice"
	"safesteps/internal/quiz"
	mem "safesteps/pkg/memcache"
	"safesteps/pkg/utils"
)

type quizObserver struct{ feedback []string }

func (o *quizObserver) QuizCompleted(feedback string) { o.feedback = append(o.feedback, feedback) }

func newQuizService(t *testing.T) (QuizServiceInterface, *quizObserver) {
	obs := &quizObserver{}
	return NewQuizService(testCatalogs(t), mem.NewSessions[quiz.Session](time.Hour), obs), obs
}

func TestQuizService_HidesAnswerUntilRevealed(t *testing.T) {
	svc, _ := newQuizService(t)
	ctx := context.Background()

	s, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, s.Question)
	assert.Equal(t, "earthquake1", s.Question.ID)
	assert.Nil(t, s.Question.CorrectAnswer)
	assert.Empty(t, s.Question.Explanation)
	assert.Equal(t, "0/1", s.ScoreLabel)
	assert.Equal(t, 5, s.Total)

	s, err = svc.SelectOption(ctx, s.SessionID, 0)
	require.NoError(t, err)
	require.NotNil(t, s.Selected)
	assert.Equal(t, 0, *s.Selected)

	s, err = svc.Submit(ctx, s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, s.Question.CorrectAnswer)
	assert.Equal(t, 1, *s.Question.CorrectAnswer)
	assert.NotEmpty(t, s.Question.Explanation)
	require.NotNil(t, s.Correct)
	assert.False(t, *s.Correct)
	assert.Equal(t, notice.Error, s.Notice.Level)
	assert.Equal(t, 20.0, s.Progress)
}

func TestQuizService_AllCorrect(t *testing.T) {
	svc, obs := newQuizService(t)
	ctx := context.Background()

	s, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := s.SessionID

	for _, q := range catalog.QuizQuestions {
		_, err = svc.SelectOption(ctx, id, q.CorrectAnswer)
		require.NoError(t, err)
		s, err = svc.Submit(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Correct! Well done! 🎉", s.Notice.Message)
		s, err = svc.Next(ctx, id)
		require.NoError(t, err)
	}

	assert.True(t, s.Completed)
	assert.Nil(t, s.Question)
	assert.Equal(t, 100.0, s.Progress)
	require.NotNil(t, s.Summary)
	assert.Equal(t, 5, s.Summary.FinalScore)
	assert.Equal(t, 100.0, s.Summary.Percentage)
	assert.Equal(t, "Quiz completed! Final score: 5/5", s.Notice.Message)
	assert.Equal(t, []string{"Excellent work! 🏆"}, obs.feedback)

	// further moves on a completed quiz change nothing
	again, err := svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, again.Notice)
	assert.Len(t, obs.feedback, 1)

	s, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.False(t, s.Completed)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, "Quiz reset! Good luck!", s.Notice.Message)
}

func TestQuizService_SubmitWithoutSelection(t *testing.T) {
	svc, _ := newQuizService(t)
	ctx := context.Background()

	s, _ := svc.StartSession(ctx)
	got, err := svc.Submit(ctx, s.SessionID)
	require.NoError(t, err)
	assert.False(t, got.Revealed)
	assert.Nil(t, got.Notice)
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc, _ := newQuizService(t)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = svc.Submit(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
