package request_models

type ToggleItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// SetFilterRequest clears the filter when Category is empty.
type SetFilterRequest struct {
	Category string `json:"category" binding:"omitempty,checklist_category"`
}
