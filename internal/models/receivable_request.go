package models

// CreateReceivableRequest represents the JSON body for creating a receivable
// swagger:model CreateReceivableRequest
type CreateReceivableRequest struct {
	// required: true
	// example: Invoice 1
	Description string `json:"description" validate:"required" example:"Invoice 1"`

	// required: true
	// example: 150.00
	Amount Amount `json:"amount" swaggertype:"number" example:"150.00"`

	// required: true
	// example: 2025-01-01
	DueDate Date `json:"dueDate" swaggertype:"string" example:"2025-01-01"`
}

// UpdateReceivableRequest represents the JSON body for updating a receivable.
// Omitted fields keep their stored value.
// swagger:model UpdateReceivableRequest
type UpdateReceivableRequest struct {
	Description *string `json:"description,omitempty" example:"Invoice 1 (revised)"`
	Amount      *Amount `json:"amount,omitempty" swaggertype:"number" example:"175.50"`
	DueDate     *Date   `json:"dueDate,omitempty" swaggertype:"string" example:"2025-02-01"`
}

// ReceivableChanges carries the optional fields of an update into the service layer.
type ReceivableChanges struct {
	Description *string
	Amount      *Amount
	DueDate     *Date
}
