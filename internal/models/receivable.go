package models

import (
	"time"

	"github.com/google/uuid"
)

// ReceivableDB represents a receivable_accounts row.
// Rows are never physically deleted; Removed marks them invisible.
type ReceivableDB struct {
	ID          uuid.UUID `db:"id"`
	Description string    `db:"description"`
	Amount      Amount    `db:"amount"`
	DueDate     Date      `db:"due_date"`
	Removed     bool      `db:"removed"`
	UserID      uuid.UUID `db:"user_id"` // Owner, fixed at creation
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ReceivableWithOwnerDB is a receivable row joined with its owner's public columns.
type ReceivableWithOwnerDB struct {
	ReceivableDB
	OwnerName    string `db:"owner_name"`
	OwnerEmail   string `db:"owner_email"`
	OwnerIsAdmin bool   `db:"owner_is_admin"`
}

// Receivable is the API representation of a receivable account.
// swagger:model Receivable
type Receivable struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description" example:"Invoice 1"`
	Amount      Amount    `json:"amount" swaggertype:"number" example:"150.00"`
	DueDate     Date      `json:"dueDate" swaggertype:"string" example:"2025-01-01"`
	Removed     bool      `json:"removed" example:"false"`
	OwnerUserID uuid.UUID `json:"ownerUserId"`
	User        *User     `json:"user,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// View converts the row into its API representation without owner details.
func (r *ReceivableDB) View() *Receivable {
	if r == nil {
		return nil
	}
	return &Receivable{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Removed:     r.Removed,
		OwnerUserID: r.UserID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// View converts the joined row into its API representation with the owner's public view.
func (r *ReceivableWithOwnerDB) View() *Receivable {
	if r == nil {
		return nil
	}
	v := r.ReceivableDB.View()
	v.User = &User{
		ID:      r.UserID,
		Name:    r.OwnerName,
		Email:   r.OwnerEmail,
		IsAdmin: r.OwnerIsAdmin,
	}
	return v
}
