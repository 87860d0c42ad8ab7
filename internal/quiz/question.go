package quiz

import "fmt"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectAnswer int
	Explanation   string
	Category      string
	Difficulty    Difficulty
}

// Validate checks the catalog invariants of a single question.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %s has no options", q.ID)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %s: correct answer %d out of range [0,%d)", q.ID, q.CorrectAnswer, len(q.Options))
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}
	return nil
}

// ValidateCatalog checks every question and rejects duplicate ids.
func ValidateCatalog(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("quiz catalog is empty")
	}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
