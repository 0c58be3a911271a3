// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"profilefetch/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = logger.HeaderRequestID

// NewRequestIDMiddleware кладет идентификатор запроса в контекст и в ответ.
// Отсутствующий или недопустимый заголовок заменяется сгенерированным идентификатором.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, requestID := logger.EnsureRequestID(
			logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID)))

		ctx.SetContext(requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
