package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/logger"
)

//go:generate mockgen -source=role.go -destination=mock_role.go -package=middlewares

// AdminChecker resolves the role of an authenticated user.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminMiddleware lets the request through only for admins.
// It must run after AuthMiddleware.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := UserIDFromContext(ctx)
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			isAdmin, err := checker.IsAdmin(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to resolve user role", "request_id", RequestIDFromContext(ctx), "userID", userID, "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !isAdmin {
				logger.Log.Warnw("admin access denied", "request_id", RequestIDFromContext(ctx), "userID", userID, "method", r.Method, "uri", r.RequestURI)
				writeMessage(w, http.StatusForbidden, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
