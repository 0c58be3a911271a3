// Package endpoint определяет порт удаленного сервиса профилей.
package endpoint

import (
	"context"

	"profilefetch/internal/profile/domain/entities"
)

// ProfileEndpoint выполняет один блокирующий запрос профиля по идентификатору пользователя.
// Ненулевая ошибка означает транспортный сбой и должна оборачивать entities.ErrNetworkFault.
type ProfileEndpoint interface {
	FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error)
}
