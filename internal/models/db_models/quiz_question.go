package db_models

type QuizQuestion struct {
	CatalogModel
	Text          string   `gorm:"not null"`
	Options       []string `gorm:"serializer:json;not null"`
	CorrectAnswer int      `gorm:"not null"`
	Explanation   string
	Category      string `gorm:"index"`
	Difficulty    string
}
