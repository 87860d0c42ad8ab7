package response_models

import "safesteps/internal/notice"

type ContactView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Available   string `json:"available"`
}

type DirectoryResponse struct {
	Hotline   ContactView   `json:"hotline"`
	Contacts  []ContactView `json:"contacts"`
	QuickTips []string      `json:"quick_tips"`
}

type ActionResponse struct {
	Kind   string         `json:"kind"`
	URI    string         `json:"uri,omitempty"`
	Text   string         `json:"text,omitempty"`
	Title  string         `json:"title,omitempty"`
	URL    string         `json:"url,omitempty"`
	Notice *notice.Notice `json:"notice,omitempty"`
}
