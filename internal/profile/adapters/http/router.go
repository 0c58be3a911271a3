// Package http содержит HTTP API сервиса профилей.
package http

import (
	"github.com/gofiber/fiber/v3"

	"profilefetch/internal/profile/adapters/http/middleware"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, handler *Handler) {
	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", handler.Health)

	apiV1 := app.Group("/api/v1")

	profiles := apiV1.Group("/profiles")
	profiles.Post("/:user_id/fetch", handler.FetchProfile)
	profiles.Get("/:user_id", handler.GetProfile)

	// Обработчик для несуществующих маршрутов.
	app.Use(handler.NotFound)
}
