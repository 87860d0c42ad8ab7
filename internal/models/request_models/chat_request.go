package request_models

// SendMessageRequest may carry blank text; the transcript ignores it.
type SendMessageRequest struct {
	Text string `json:"text"`
}

type RecognitionRequest struct {
	Type       string `json:"type" binding:"required,oneof=start result error end"`
	Transcript string `json:"transcript"`
}
