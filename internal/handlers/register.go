package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-receivables/internal/models"
	"github.com/sbilibin2017/gw-receivables/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, isAdmin bool) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User created"
// @Failure 400 {object} models.MessageResponse "User already exists / invalid request"
// @Failure 500 {object} models.MessageResponse "Error creating user"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		isAdmin := req.IsAdmin != nil && *req.IsAdmin

		err := svc.Register(r.Context(), req.Name, req.Email, req.Password, isAdmin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "User already exists")
			default:
				logError(r, "internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error creating user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User created successfully",
		})
	}
}
