package db_models

type ChecklistItem struct {
	CatalogModel
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"index;not null"`
	Priority    string `gorm:"not null"`
}
