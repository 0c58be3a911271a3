// Package api определяет входной порт сценария получения профиля.
package api

import (
	"context"

	"profilefetch/internal/profile/domain/entities"
)

// FetchProfileUseCase получает профиль у удаленного сервиса и кэширует его при успехе.
type FetchProfileUseCase interface {
	FetchProfileSync(ctx context.Context, userID string) entities.UseCaseResult
}
