package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"profilefetch/pkg/logger"
)

// Константы для логирования.
const (
	LogServerPanic        = "server panic"
	ErrorInternalServer   = "internal server error"
	ErrorFailedToRecovery = "failed to send error response after panic"
)

// NewRecoveryMiddleware создает промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				log := logger.Log(requestCtx)
				log.Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if sendErr := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": ErrorInternalServer,
				}); sendErr != nil {
					log.Error(requestCtx, ErrorFailedToRecovery, zap.Error(sendErr))
					err = sendErr
				}
			}
		}()

		return ctx.Next()
	}
}
