package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodStore  = "store"
	LogMethodLookup = "lookup"

	ErrorFailedToGet    = "failed to get profile from redis"
	ErrorFailedToSet    = "failed to set profile in redis"
	ErrorFailedToDecode = "failed to decode cached profile"
	ErrorFailedToEncode = "failed to encode profile"
	ErrorFailedToClose  = "failed to close redis connection"

	keyPrefix = "profile:"
)

// DefaultTTL - срок хранения профиля в Redis, если ttl не задан.
const DefaultTTL = 15 * time.Minute

// RedisCache реализует cache.ProfileCache поверх Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type redisProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url"`
}

// NewRedisCache создает кэш профилей поверх готового клиента Redis.
// Неположительный ttl заменяется на DefaultTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) cache.ProfileCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Key возвращает ключ Redis для профиля пользователя.
func Key(userID string) string {
	return keyPrefix + userID
}

// Store сохраняет профиль в Redis в формате JSON.
func (c *RedisCache) Store(ctx context.Context, profile entities.UserProfile) error {
	if err := validateForStore(profile); err != nil {
		return err
	}

	log := logger.Log(ctx).With(zap.String("method", LogMethodStore), zap.String("userID", profile.ID))

	payload, err := json.Marshal(redisProfile(profile))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToEncode, err)
	}

	if err := c.client.Set(ctx, Key(profile.ID), payload, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Lookup читает профиль из Redis.
func (c *RedisCache) Lookup(ctx context.Context, userID string) (entities.UserProfile, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodLookup), zap.String("userID", userID))

	payload, err := c.client.Get(ctx, Key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.UserProfile{}, false, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return entities.UserProfile{}, false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var stored redisProfile
	if err := json.Unmarshal(payload, &stored); err != nil {
		log.Error(ctx, ErrorFailedToDecode, zap.Error(err))
		return entities.UserProfile{}, false, fmt.Errorf("%s: %w", ErrorFailedToDecode, err)
	}

	return entities.UserProfile(stored), true, nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
