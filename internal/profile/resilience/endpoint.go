package resilience

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"profilefetch/internal/profile/config"
	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/endpoint"
	"profilefetch/pkg/logger"
)

// LogMethodFetchProfile - имя метода для логов декоратора.
const LogMethodFetchProfile = "resilience.FetchProfile"

// Endpoint оборачивает endpoint.ProfileEndpoint повторами и circuit breaker.
// Учитываются только сетевые сбои, статусы сервиса передаются без изменений.
type Endpoint struct {
	name    string
	next    endpoint.ProfileEndpoint
	breaker *CircuitBreaker
	retry   *Retry
}

// NewEndpoint создает декоратор по настройкам ResilienceConfig.
func NewEndpoint(next endpoint.ProfileEndpoint, name string, cfg config.ResilienceConfig) *Endpoint {
	return &Endpoint{
		name: name,
		next: next,
		breaker: NewCircuitBreaker(name, CircuitBreakerConfig{
			ErrorThreshold:   cfg.ErrorThreshold,
			Timeout:          cfg.OpenTimeout,
			SuccessThreshold: cfg.SuccessThreshold,
		}),
		retry: NewRetry(name, RetryConfig{
			MaxAttempts:    cfg.MaxAttempts,
			InitialBackoff: cfg.InitialBackoff,
			MaxBackoff:     cfg.MaxBackoff,
			ShouldRetry:    isNetworkFault,
		}),
	}
}

// FetchProfile реализует endpoint.ProfileEndpoint.
func (e *Endpoint) FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error) {
	log := logger.Log(ctx).With(
		zap.String("method", LogMethodFetchProfile),
		zap.String("service", e.name),
		zap.String("userID", userID),
	)

	if !e.breaker.AllowRequest(ctx) {
		log.Warn(ctx, LogCircuitReject)
		return entities.EndpointResult{}, entities.NewNetworkError(e.name, ErrCircuitOpen)
	}

	var result entities.EndpointResult
	err := e.retry.Execute(ctx, func() error {
		var err error
		result, err = e.next.FetchProfile(ctx, userID)
		return err
	})

	if isNetworkFault(err) {
		e.breaker.RecordResult(ctx, err)
	} else {
		e.breaker.RecordResult(ctx, nil)
	}

	return result, err
}

// State возвращает состояние circuit breaker.
func (e *Endpoint) State() CircuitState {
	return e.breaker.State()
}

func isNetworkFault(err error) bool {
	return errors.Is(err, entities.ErrNetworkFault)
}
