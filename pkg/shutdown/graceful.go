// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"profilefetch/pkg/logger"
)

const (
	msgSignalReceived  = "shutdown signal received"
	msgHookFailed      = "shutdown hook failed"
	msgShutdownTimeout = "shutdown timeout exceeded"
)

// Hook - функция, выполняемая при завершении приложения.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM
// или отмены ctx, затем выполняет хуки через Run.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Log(ctx).Info(ctx, msgSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	Run(ctx, timeout, hooks...)
}

// Run выполняет хуки строго по порядку: следующий стартует после возврата предыдущего.
// Ошибка хука логируется и не прерывает остальные. Общий срок всех хуков - timeout;
// по его истечении Run возвращается, не дожидаясь оставшихся.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i, hook := range hooks {
			if hookCtx.Err() != nil {
				return
			}
			if err := hook(hookCtx); err != nil {
				log.Error(hookCtx, msgHookFailed, zap.Int("hook", i), zap.Error(err))
			}
		}
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(hookCtx, msgShutdownTimeout, zap.Duration("timeout", timeout))
	}
}
