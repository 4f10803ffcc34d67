package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-receivables/internal/logger"
	"github.com/sbilibin2017/gw-receivables/internal/models"
)

// UserCacheRepository caches public user views in Redis.
// Only the public view is stored; password hashes never leave the database.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a cache whose entries expire after expiration.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("user cache get", "key", key, "result", "miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("user cache get", "key", key, "error", err)
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Infow("user cache get", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("user cache get", "key", key, "result", "hit")
	return &user, nil
}

// Set stores user under its id.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userCacheKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, data, r.exp).Err(); err != nil {
		logger.Log.Infow("user cache set", "key", key, "error", err)
		return err
	}

	logger.Log.Infow("user cache set", "key", key, "result", "ok")
	return nil
}
