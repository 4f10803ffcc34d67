package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-receivables/internal/models"
	"github.com/sbilibin2017/gw-receivables/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return the public user view and a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "User and JWT token"
// @Failure 400 {object} models.MessageResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Invalid credentials"
// @Failure 500 {object} models.MessageResponse "Error during login"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				logError(r, "internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error during login")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			User:  user,
			Token: token,
		})
	}
}
