package db_models

// CannedAnswer is one row of SafeBot's keyword table. Position decides which keyword
// wins when a question mentions several.
type CannedAnswer struct {
	CatalogModel
	Keyword string `gorm:"uniqueIndex;not null"`
	Text    string `gorm:"not null"`
}
