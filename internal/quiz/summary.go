package quiz

type Summary struct {
	FinalScore int
	Total      int
	Percentage float64
	Feedback   string
	Strengths  string
	FocusAreas string
}

const (
	excellentThreshold = 80
	goodThreshold      = 60
)

func Summarize(finalScore, total int) Summary {
	s := Summary{FinalScore: finalScore, Total: total}
	if total > 0 {
		s.Percentage = float64(finalScore) * 100 / float64(total)
	}

	switch {
	case s.Percentage >= excellentThreshold:
		s.Feedback = "Excellent work! 🏆"
	case s.Percentage >= goodThreshold:
		s.Feedback = "Good job! 👍"
	default:
		s.Feedback = "Keep practicing! 💪"
	}

	if s.Percentage >= goodThreshold {
		s.Strengths = "Emergency procedures"
		s.FocusAreas = "Advanced scenarios"
	} else {
		s.Strengths = "Basic safety knowledge"
		s.FocusAreas = "Review all categories"
	}
	return s
}
