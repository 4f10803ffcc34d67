package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// example: Ana Silva
	Name string `json:"name" validate:"required,min=3,max=100" example:"Ana Silva"`

	// Email, unique across users
	// required: true
	// example: ana@x.com
	Email string `json:"email" validate:"required,email" example:"ana@x.com"`

	// Password, at most 72 bytes
	// required: true
	// example: secret1
	Password string `json:"password" validate:"required,max=72" example:"secret1"`

	// Grants admin rights, defaults to false
	// example: false
	IsAdmin *bool `json:"isAdmin,omitempty" example:"false"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User created successfully
	Message string `json:"message" example:"User created successfully"`
}
