package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fl-jobs/internal/domain"
)

// ErrSessionCorrupt marks a stored session value that exists but no
// longer deserializes into a UserData record.
var ErrSessionCorrupt = errors.New("stored session record is corrupt")

const sessionKeyPrefix = "fl-jobs:session:"

// SessionRepository persists the single durable record of the
// system: one JSON-serialized UserData value per session id. Written
// on login and profile update, deleted on logout, read on restore.
type SessionRepository interface {
	Save(ctx context.Context, sessionID string, user *domain.UserData, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*domain.UserData, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) SessionRepository {
	return &sessionRepository{rdb: rdb}
}

func (r *sessionRepository) Save(ctx context.Context, sessionID string, user *domain.UserData, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKeyPrefix+sessionID, data, ttl).Err()
}

// Get returns (nil, nil) when no record exists. A record that fails
// to deserialize is deleted and reported as ErrSessionCorrupt so the
// caller falls back to role selection instead of crashing on boot.
func (r *sessionRepository) Get(ctx context.Context, sessionID string) (*domain.UserData, error) {
	data, err := r.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user domain.UserData
	if err := json.Unmarshal(data, &user); err != nil || !user.Role.IsValid() {
		_ = r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
		return nil, ErrSessionCorrupt
	}
	return &user, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
