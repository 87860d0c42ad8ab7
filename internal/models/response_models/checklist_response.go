package response_models

import "safesteps/internal/notice"

type ChecklistItemView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

type CategoryCountView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type ChecklistResponse struct {
	SessionID      string              `json:"session_id"`
	ActiveCategory *string             `json:"active_category"`
	Items          []ChecklistItemView `json:"items"`
	Completed      int                 `json:"completed"`
	Total          int                 `json:"total"`
	Progress       float64             `json:"progress"`
	ProgressLabel  string              `json:"progress_label"`
	FullyPrepared  bool                `json:"fully_prepared"`
	Categories     []CategoryCountView `json:"categories"`
	Notice         *notice.Notice      `json:"notice,omitempty"`
}
