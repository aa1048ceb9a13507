package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parkwatch/parkwatch/internal/adapters/database/redis/preferences"
)

type Client struct {
	Preferences *preferences.Storage
}

type Options struct {
	Host          string
	Port          string
	Password      string
	PreferenceTTL time.Duration
}

func New(opts Options) (*Client, error) {
	if opts.PreferenceTTL <= 0 {
		opts.PreferenceTTL = 10 * time.Minute
	}

	preferenceStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := preferenceStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping preference storage: %w", err)
	}

	return &Client{
		Preferences: preferences.NewStorage(preferenceStorage, opts.PreferenceTTL),
	}, nil
}
