package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: ana@x.com
	Email string `json:"email" validate:"required" example:"ana@x.com"`

	// Password
	// required: true
	// example: secret1
	Password string `json:"password" validate:"required" example:"secret1"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Authenticated user
	User *User `json:"user"`

	// Bearer token, valid for 24 hours
	// example: JWT_TOKEN
	Token string `json:"token" example:"JWT_TOKEN"`
}
