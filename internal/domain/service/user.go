package service

import (
	"context"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
	"github.com/parkwatch/parkwatch/pkg/logger"
)

// Radius clamp bounds enforced on settings writes. The upper bound matches
// the candidate cutoff used by the proximity index.
const (
	MinRadiusMiles = 0.05
	MaxRadiusMiles = MaxNotifyRadiusMiles
)

type userStorage interface {
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entity.User, error)
}

type preferenceCache interface {
	GetMany(ctx context.Context, ids []int64) (map[int64]entity.User, error)
	Set(ctx context.Context, user entity.User) error
	Clear(ctx context.Context, id int64) error
}

// UserService manages notification preferences. Reads go through a redis
// cache; postgres stays the source of truth and a cache failure only costs
// the round trip.
type UserService struct {
	userStorage userStorage
	cache       preferenceCache
	logger      *logger.Logger
}

func NewUserService(userStorage userStorage, cache preferenceCache, log *logger.Logger) *UserService {
	return &UserService{
		userStorage: userStorage,
		cache:       cache,
		logger:      log,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.userStorage.Get(ctx, id)
}

// GetByIDs is the bulk preference fetch behind the notification fan-out.
// Cached entries are used where present; the rest come from postgres in a
// single query and are written back to the cache best-effort.
func (s *UserService) GetByIDs(ctx context.Context, ids []int64) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, err := s.cache.GetMany(ctx, ids)
	if err != nil {
		s.logger.Warnf("preference cache read failed, falling back to postgres: %v", err)
		cached = nil
	}

	var missing []int64
	users := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := cached[id]; ok {
			users = append(users, u)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return users, nil
	}

	fetched, err := s.userStorage.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, u := range fetched {
		if cacheErr := s.cache.Set(ctx, u); cacheErr != nil {
			s.logger.Warnf("failed to cache preferences for user %d: %v", u.ID, cacheErr)
		}
	}

	return append(users, fetched...), nil
}

// UpdateSettings upserts the user's notification settings and drops the
// cached copy. The radius is clamped to [MinRadiusMiles, MaxRadiusMiles];
// zero is kept as "unset" so the default applies.
func (s *UserService) UpdateSettings(ctx context.Context, user entity.User) (*entity.User, error) {
	user.RadiusMiles = clampRadius(user.RadiusMiles)

	updated, err := s.userStorage.Upsert(ctx, &user)
	if err != nil {
		return nil, err
	}
	if cacheErr := s.cache.Clear(ctx, user.ID); cacheErr != nil {
		s.logger.Warnf("failed to invalidate cached preferences for user %d: %v", user.ID, cacheErr)
	}
	return updated, nil
}

func clampRadius(radius float64) float64 {
	switch {
	case radius <= 0:
		return 0
	case radius < MinRadiusMiles:
		return MinRadiusMiles
	case radius > MaxRadiusMiles:
		return MaxRadiusMiles
	default:
		return radius
	}
}
