package response_models

import "safesteps/internal/notice"

// QuestionView hides the answer and explanation until the question is revealed.
type QuestionView struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	CorrectAnswer *int     `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizSummaryResponse struct {
	FinalScore int     `json:"final_score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Feedback   string  `json:"feedback"`
	Strengths  string  `json:"strengths"`
	FocusAreas string  `json:"focus_areas"`
}

type QuizSessionResponse struct {
	SessionID  string               `json:"session_id"`
	Index      int                  `json:"index"`
	Total      int                  `json:"total"`
	Question   *QuestionView        `json:"question,omitempty"`
	Selected   *int                 `json:"selected"`
	Revealed   bool                 `json:"revealed"`
	Correct    *bool                `json:"correct,omitempty"`
	Score      int                  `json:"score"`
	ScoreLabel string               `json:"score_label"`
	Progress   float64              `json:"progress"`
	Answered   int                  `json:"answered"`
	Completed  bool                 `json:"completed"`
	Summary    *QuizSummaryResponse `json:"summary,omitempty"`
	Notice     *notice.Notice       `json:"notice,omitempty"`
}
