// Package cache содержит реализации кэша профилей: в памяти, Redis и Postgres.
package cache

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/cache"
)

// MemoryCache хранит профили в памяти процесса поверх go-cache.
// Записи не истекают: профиль живет до перезаписи или Close.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache создает пустой кэш в памяти.
func NewMemoryCache() cache.ProfileCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Store сохраняет профиль под его идентификатором.
func (c *MemoryCache) Store(_ context.Context, profile entities.UserProfile) error {
	if err := validateForStore(profile); err != nil {
		return err
	}

	c.items.Set(profile.ID, profile, gocache.NoExpiration)
	return nil
}

// Lookup возвращает профиль по идентификатору пользователя.
func (c *MemoryCache) Lookup(_ context.Context, userID string) (entities.UserProfile, bool, error) {
	item, ok := c.items.Get(userID)
	if !ok {
		return entities.UserProfile{}, false, nil
	}

	profile, ok := item.(entities.UserProfile)
	return profile, ok, nil
}

// Close очищает кэш.
func (c *MemoryCache) Close() error {
	c.items.Flush()
	return nil
}

// validateForStore отсекает профили, которые нельзя сохранить под идентификатором.
func validateForStore(profile entities.UserProfile) error {
	if profile.IsZero() {
		return entities.ErrEmptyProfile
	}
	if profile.ID == "" {
		return entities.ErrEmptyUserID
	}
	return nil
}
