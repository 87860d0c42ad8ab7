// Package quiz walks a fixed, ordered catalog of multiple-choice questions.
//
// A Session is a plain value; Reduce is the only way it changes. The engine keeps
// one quirk of the page it backs: the credit for a correct final answer is granted
// when the session moves to Completed, not when that answer is submitted.
package quiz

import (
	"fmt"

	"safesteps/internal/notice"
)

type EventKind string

const (
	SelectEvent EventKind = "select"
	SubmitEvent EventKind = "submit"
	NextEvent   EventKind = "next"
	ResetEvent  EventKind = "reset"
)

type Event struct {
	Kind   EventKind
	Option int
}

func Select(option int) Event { return Event{Kind: SelectEvent, Option: option} }
func Submit() Event           { return Event{Kind: SubmitEvent} }
func Next() Event             { return Event{Kind: NextEvent} }
func Reset() Event            { return Event{Kind: ResetEvent} }

type Session struct {
	Index      int
	Selected   *int
	Revealed   bool
	Score      int
	Answered   []bool
	Completed  bool
	FinalScore int
}

func NewSession(total int) Session {
	return Session{Answered: make([]bool, total)}
}

// Reduce applies e to s over the given catalog. Transitions that are not allowed in
// the current state leave the session unchanged and produce no notice.
func Reduce(questions []Question, s Session, e Event) (Session, *notice.Notice) {
	n := len(questions)
	if n == 0 {
		return s, nil
	}
	s = s.clone()

	if e.Kind == ResetEvent {
		return NewSession(n), notice.New(notice.Success, "Quiz reset! Good luck!")
	}
	if s.Completed {
		return s, nil
	}

	q := questions[s.Index]
	last := s.Index == n-1

	switch e.Kind {
	case SelectEvent:
		if s.Revealed || e.Option < 0 || e.Option >= len(q.Options) {
			return s, nil
		}
		opt := e.Option
		s.Selected = &opt
		return s, nil

	case SubmitEvent:
		if s.Selected == nil || s.Revealed {
			return s, nil
		}
		s.Revealed = true
		s.Answered[s.Index] = true
		if *s.Selected != q.CorrectAnswer {
			return s, notice.New(notice.Error, "Not quite right. Check the explanation!")
		}
		if !last {
			s.Score++
		}
		return s, notice.New(notice.Success, "Correct! Well done! 🎉")

	case NextEvent:
		if !s.Revealed {
			return s, nil
		}
		if !last {
			s.Index++
			s.Selected = nil
			s.Revealed = false
			return s, nil
		}
		s.Completed = true
		s.FinalScore = s.Score
		if s.Selected != nil && *s.Selected == q.CorrectAnswer {
			s.FinalScore++
		}
		return s, notice.New(notice.Success, fmt.Sprintf("Quiz completed! Final score: %d/%d", s.FinalScore, n))
	}

	return s, nil
}

// Progress is the share of the quiz already seen, as a percentage.
func Progress(s Session, total int) float64 {
	if total == 0 {
		return 0
	}
	if s.Completed {
		return 100
	}
	seen := s.Index
	if s.Revealed {
		seen++
	}
	return float64(seen) * 100 / float64(total)
}

// ScoreLabel renders the running score the way the progress bar shows it.
func ScoreLabel(s Session) string {
	return fmt.Sprintf("%d/%d", s.Score, max(s.Index, 1))
}

func (s Session) AnsweredCount() int {
	n := 0
	for _, a := range s.Answered {
		if a {
			n++
		}
	}
	return n
}

func (s Session) clone() Session {
	out := s
	out.Answered = append([]bool(nil), s.Answered...)
	if s.Selected != nil {
		v := *s.Selected
		out.Selected = &v
	}
	return out
}
