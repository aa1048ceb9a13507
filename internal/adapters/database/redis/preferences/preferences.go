package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

// Storage is a read-through JSON cache of user notification preferences.
// Postgres stays the source of truth; entries expire so a missed
// invalidation heals itself.
type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: client,
		ttl:   ttl,
	}
}

// GetMany resolves cached preferences for ids in one MGET. Missing or
// unparsable entries are simply absent from the result.
func (s *Storage) GetMany(ctx context.Context, ids []int64) (map[int64]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	values, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make(map[int64]entity.User)
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			continue
		}
		users[ids[i]] = user
	}
	return users, nil
}

func (s *Storage) Set(ctx context.Context, user entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key(user.ID), raw, s.ttl).Err()
}

func (s *Storage) Clear(ctx context.Context, id int64) error {
	return s.redis.Del(ctx, key(id)).Err()
}

func key(id int64) string {
	return fmt.Sprintf("prefs:%d", id)
}
