package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/pkg/logger"
)

const (
	queryUpsertProfile = `INSERT INTO profile_cache (user_id, full_name, image_url, cached_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE
SET full_name = EXCLUDED.full_name, image_url = EXCLUDED.image_url, cached_at = EXCLUDED.cached_at`

	querySelectProfile = `SELECT user_id, full_name, image_url FROM profile_cache WHERE user_id = $1`

	LogMethodPostgresStore  = "PostgresCache.Store"
	LogMethodPostgresLookup = "PostgresCache.Lookup"
	LogProfileStored        = "profile stored"

	errStoringProfile = "failed to store profile"
	errLookingUp      = "failed to lookup profile"
)

// DBTX - подмножество методов пула pgx, необходимое кэшу.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCache хранит профили в таблице profile_cache.
type PostgresCache struct {
	db      DBTX
	onClose func()
}

// NewPostgresCache создает кэш профилей поверх пула соединений.
// onClose вызывается при Close и может быть nil.
func NewPostgresCache(db DBTX, onClose func()) cache.ProfileCache {
	return &PostgresCache{db: db, onClose: onClose}
}

// Store выполняет upsert профиля.
func (c *PostgresCache) Store(ctx context.Context, profile entities.UserProfile) error {
	if err := validateForStore(profile); err != nil {
		return err
	}

	log := logger.Log(ctx).With(zap.String("method", LogMethodPostgresStore), zap.String("userID", profile.ID))

	if _, err := c.db.Exec(ctx, queryUpsertProfile, profile.ID, profile.FullName, profile.ImageURL); err != nil {
		log.Error(ctx, errStoringProfile, zap.Error(err))
		return fmt.Errorf("%s: %w", errStoringProfile, err)
	}

	log.Debug(ctx, LogProfileStored)
	return nil
}

// Lookup читает профиль по идентификатору пользователя.
func (c *PostgresCache) Lookup(ctx context.Context, userID string) (entities.UserProfile, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodPostgresLookup), zap.String("userID", userID))

	var profile entities.UserProfile
	err := c.db.QueryRow(ctx, querySelectProfile, userID).Scan(&profile.ID, &profile.FullName, &profile.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.UserProfile{}, false, nil
		}
		log.Error(ctx, errLookingUp, zap.Error(err))
		return entities.UserProfile{}, false, fmt.Errorf("%s: %w", errLookingUp, err)
	}

	return profile, true, nil
}

// Close освобождает пул соединений, если владелец передал onClose.
func (c *PostgresCache) Close() error {
	if c.onClose != nil {
		c.onClose()
	}
	return nil
}
