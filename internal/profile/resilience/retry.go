package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"profilefetch/pkg/logger"
)

// RetryConfig содержит настройки повторов.
type RetryConfig struct {
	// MaxAttempts - максимальное количество попыток, включая первую.
	MaxAttempts int
	// InitialBackoff - задержка перед второй попыткой.
	InitialBackoff time.Duration
	// MaxBackoff - верхняя граница задержки.
	MaxBackoff time.Duration
	// ShouldRetry решает, повторять ли попытку после данной ошибки.
	ShouldRetry func(error) bool
}

// ErrContextCanceled возвращается, когда контекст отменен во время ожидания повтора.
var ErrContextCanceled = errors.New("context was canceled during retry")

// Константы для логирования.
const (
	LogRetryOperation   = "retry operation"
	LogRetryAttempt     = "retry attempt"
	LogRetrySuccess     = "retry succeeded"
	LogRetryMaxAttempts = "retry max attempts reached"

	backoffMultiplier = 2
)

// Retry выполняет функцию с повторными попытками по экспоненциальному расписанию.
type Retry struct {
	name   string
	config RetryConfig
}

// NewRetry создает новый экземпляр retry механизма.
func NewRetry(name string, config RetryConfig) *Retry {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.ShouldRetry == nil {
		config.ShouldRetry = func(error) bool { return true }
	}

	return &Retry{name: name, config: config}
}

// Execute выполняет операцию, повторяя ее пока ShouldRetry разрешает и попытки не исчерпаны.
func (r *Retry) Execute(ctx context.Context, operation func() error) error {
	log := logger.Log(ctx).With(zap.String("retry", r.name))
	log.Debug(ctx, LogRetryOperation)

	attempts := 0
	var lastErr error

	err := backoff.RetryNotify(func() error {
		attempts++
		lastErr = operation()
		if lastErr != nil && !r.config.ShouldRetry(lastErr) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}, backoff.WithContext(r.schedule(), ctx), func(err error, next time.Duration) {
		log.Info(ctx, LogRetryAttempt,
			zap.Int("attempt", attempts),
			zap.Duration("backoff", next),
			zap.Error(err))
	})

	switch {
	case err == nil:
		if attempts > 1 {
			log.Info(ctx, LogRetrySuccess, zap.Int("attempts", attempts))
		}
		return nil
	case ctx.Err() != nil && lastErr != nil && !errors.Is(err, lastErr):
		return fmt.Errorf("%w: %w: %w", ErrContextCanceled, ctx.Err(), lastErr)
	case attempts >= r.config.MaxAttempts:
		log.Warn(ctx, LogRetryMaxAttempts, zap.Int("attempts", attempts), zap.Error(err))
	}

	return err
}

func (r *Retry) schedule() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.config.InitialBackoff
	eb.MaxInterval = r.config.MaxBackoff
	eb.Multiplier = backoffMultiplier
	eb.RandomizationFactor = 0
	eb.MaxElapsedTime = 0

	return backoff.WithMaxRetries(eb, uint64(r.config.MaxAttempts-1)) //nolint:gosec
}
