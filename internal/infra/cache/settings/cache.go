package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// DefaultKey ключ снимка настроек в Redis
const DefaultKey = "availability:settings"

// Cache кэш снимка глобальных настроек с чтением через Loader.
// Ошибки Redis не прерывают запрос: настройки читаются из Loader.
type Cache struct {
	loader Loader
	redis  *redis.Client
	ttl    time.Duration
	key    string
	logger Logger
}

// NewCache создает кэш. При redisClient == nil или ttl <= 0 все чтения идут в Loader.
func NewCache(loader Loader, redisClient *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		loader: loader,
		redis:  redisClient,
		ttl:    ttl,
		key:    DefaultKey,
		logger: logger,
	}
}

func (c *Cache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

// Get возвращает снимок настроек из кэша или из Loader
func (c *Cache) Get(ctx context.Context) (domain.Settings, error) {
	if settings, ok := c.read(ctx); ok {
		return settings, nil
	}

	settings, err := c.loader.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	c.write(ctx, settings)
	return settings, nil
}

// Invalidate удаляет снимок из кэша
func (c *Cache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.redis.Del(ctx, c.key).Err(); err != nil {
		c.logger.Warn("SettingsCache.Invalidate: failed to delete key=%s: %v", c.key, err)
	}
}

func (c *Cache) read(ctx context.Context) (domain.Settings, bool) {
	if !c.enabled() {
		return domain.Settings{}, false
	}

	val, err := c.redis.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("SettingsCache.Get: redis unavailable, falling back to storage: %v", err)
		}
		return domain.Settings{}, false
	}

	var settings domain.Settings
	if err := json.Unmarshal(val, &settings); err != nil {
		c.logger.Warn("SettingsCache.Get: corrupt cache entry key=%s: %v", c.key, err)
		return domain.Settings{}, false
	}

	return settings, true
}

func (c *Cache) write(ctx context.Context, settings domain.Settings) {
	if !c.enabled() {
		return
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("SettingsCache.Get: failed to store key=%s: %v", c.key, err)
	}
}
