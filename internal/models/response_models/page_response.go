package response_models

type StatView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HeroView struct {
	Badge    string     `json:"badge"`
	Headline []string   `json:"headline"`
	Tagline  string     `json:"tagline"`
	Stats    []StatView `json:"stats"`
}

type DisasterCategoryView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Trained     string   `json:"trained"`
	Scenarios   string   `json:"scenarios"`
}

type PageResponse struct {
	Hero           HeroView               `json:"hero"`
	Categories     []DisasterCategoryView `json:"categories"`
	QuickQuestions []string               `json:"quick_questions"`
	FooterStats    []StatView             `json:"footer_stats"`
	Sections       []string               `json:"sections"`
}
