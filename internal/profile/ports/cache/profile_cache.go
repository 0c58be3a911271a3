// Package cache определяет порт кэша профилей.
package cache

import (
	"context"

	"profilefetch/internal/profile/domain/entities"
)

// ProfileCache хранит профили пользователей по их идентификатору.
type ProfileCache interface {
	// Store безусловно перезаписывает профиль по profile.ID.
	Store(ctx context.Context, profile entities.UserProfile) error

	// Lookup возвращает сохраненный профиль; found=false означает отсутствие, а не ошибку.
	Lookup(ctx context.Context, userID string) (profile entities.UserProfile, found bool, err error)

	Close() error
}
