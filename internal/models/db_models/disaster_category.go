package db_models

type DisasterCategory struct {
	CatalogModel
	Title       string   `gorm:"unique;not null"`
	Description string
	Examples    []string `gorm:"serializer:json"`
	Trained     string
	Scenarios   string
}
