// Package services определяет вспомогательные сервисы адаптеров.
package services

import "context"

// TokenService выпускает токены для межсервисных вызовов.
type TokenService interface {
	ServiceToken(ctx context.Context) (string, error)
}
