package request_models

type CallRequest struct {
	Name   string `json:"name" binding:"required"`
	Number string `json:"number" binding:"required"`
}

type ShareRequest struct {
	URL string `json:"url" binding:"required,url"`
}
