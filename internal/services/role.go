package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/logger"
	"github.com/sbilibin2017/gw-receivables/internal/models"
)

//go:generate mockgen -source=role.go -destination=mock_role.go -package=services

// UserByIDReader looks a user up by id in the credential store.
type UserByIDReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserCacheReader caches public user views.
type UserCacheReader interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
}

// RoleService answers role questions about authenticated users.
type RoleService struct {
	reader UserByIDReader
	cache  UserCacheReader
}

// NewRoleService creates a RoleService. cache may be nil.
func NewRoleService(reader UserByIDReader, cache UserCacheReader) *RoleService {
	return &RoleService{reader: reader, cache: cache}
}

// IsAdmin reports whether userID belongs to an admin. An unknown user is not an admin.
// Cache failures fall back to the credential store.
func (s *RoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("failed to read user cache", "userID", userID, "error", err)
		} else if cached != nil {
			return cached.IsAdmin, nil
		}
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return false, err
	}
	if user == nil {
		return false, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user.Public()); err != nil {
			logger.Log.Warnw("failed to cache user", "userID", userID, "error", err)
		}
	}

	return user.IsAdmin, nil
}
