package request_models

type SelectOptionRequest struct {
	Option *int `json:"option" binding:"required,min=0"`
}
