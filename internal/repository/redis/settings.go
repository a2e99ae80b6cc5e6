package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/config"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const settingsKey = "gst_compliance:gst_settings"

type SettingsProvider interface {
	Settings(ctx context.Context) (*domain.Settings, error)
}

// Client is the subset of the go-redis client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
}

// SettingsCache serves GST settings from redis, falling back to the wrapped
// provider on a miss. Redis failures degrade to reading through.
type SettingsCache struct {
	log      *slog.Logger
	client   Client
	provider SettingsProvider
	ttl      time.Duration
}

func NewClient(cfg config.Redis) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewSettingsCache(log *slog.Logger, client Client, provider SettingsProvider, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		log:      log,
		client:   client,
		provider: provider,
		ttl:      ttl,
	}
}

func (c *SettingsCache) Settings(ctx context.Context) (*domain.Settings, error) {
	cached, err := c.client.Get(ctx, settingsKey).Bytes()
	switch {
	case err == nil:
		var settings domain.Settings
		if err := json.Unmarshal(cached, &settings); err == nil {
			return &settings, nil
		}
		c.log.WarnContext(ctx, "discarding malformed cached settings")

	case !errors.Is(err, goredis.Nil):
		c.log.WarnContext(ctx, "failed to read cached settings", slog.String("err", err.Error()))
	}

	settings, err := c.provider.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := c.client.Set(ctx, settingsKey, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "failed to cache settings", slog.String("err", err.Error()))
	}

	return settings, nil
}
