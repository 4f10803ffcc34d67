package models

// MessageResponse is the body of every error response and of plain acknowledgements.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Receivable not found
	Message string `json:"message" example:"Receivable not found"`
}
