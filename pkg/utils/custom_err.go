package utils

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrUnknownChecklistItem = errors.New("unknown checklist item")
	ErrInvalidCategory      = errors.New("invalid checklist category")
	ErrInvalidInput         = errors.New("invalid input")
	ErrCatalogEmpty         = errors.New("catalog is empty")
	ErrDatabaseError        = errors.New("database error")
)
