package request_models

import (
	"github.com/go-playground/validator/v10"

	"safesteps/internal/checklist"
)

// Validators are the custom binding tags used by the request models.
var Validators = map[string]validator.Func{
	"checklist_category": func(fl validator.FieldLevel) bool {
		_, err := checklist.ParseCategory(fl.Field().String())
		return err == nil
	},
}
