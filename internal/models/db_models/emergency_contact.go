package db_models

type EmergencyContact struct {
	CatalogModel
	Name        string `gorm:"not null"`
	Number      string `gorm:"not null"`
	Description string
	Kind        string `gorm:"index"`
	Available   string
}
