package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `db:"id"`            // Primary key
	Name         string    `db:"name"`          // Display name, 3 to 100 characters
	Email        string    `db:"email"`         // Unique login email
	PasswordHash string    `db:"password_hash"` // bcrypt digest, never the plaintext
	IsAdmin      bool      `db:"is_admin"`      // Grants access to admin-only routes
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// User is the public view of a user. It never carries the password hash.
// swagger:model User
type User struct {
	ID      uuid.UUID `json:"id" example:"6f1c2a0e-8b1d-4f6e-9d55-2f0f5d1f7b10"`
	Name    string    `json:"name" example:"Ana Silva"`
	Email   string    `json:"email" example:"ana@x.com"`
	IsAdmin bool      `json:"isAdmin" example:"false"`
}

// Public strips storage-only fields from the record.
func (u *UserDB) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
