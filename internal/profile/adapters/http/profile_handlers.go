package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/api"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerFetchProfile = "profile handler: fetch profile"
	LogHandlerGetProfile   = "profile handler: get profile"

	ErrorProfileNotCached     = "profile not cached"
	ErrorFailedToReadCache    = "failed to read profile cache"
	ErrorFailedToSendResponse = "error sending response"
	ErrorRouteNotFound        = "route not found"
	ErrorInvalidUserID        = "invalid user id"
	ErrorNotReady             = "readiness check failed"

	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	paramUserID = "user_id"
)

// ReadinessCheck проверяет доступность зависимости сервиса, например хранилища кэша.
type ReadinessCheck func(ctx context.Context) error

// Handler содержит HTTP обработчики профилей.
type Handler struct {
	useCase api.FetchProfileUseCase
	cache   cache.ProfileCache
	checks  []ReadinessCheck
}

// NewHandler создает новый экземпляр обработчика.
// checks выполняются на каждый запрос /health.
func NewHandler(useCase api.FetchProfileUseCase, profileCache cache.ProfileCache, checks ...ReadinessCheck) *Handler {
	return &Handler{
		useCase: useCase,
		cache:   profileCache,
		checks:  checks,
	}
}

// FetchProfile синхронно получает профиль у удаленного сервиса и кэширует его.
func (h *Handler) FetchProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := userIDParam(ctx)
	if err != nil {
		logger.Log(requestCtx).Warn(requestCtx, ErrorInvalidUserID, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, ErrorResponse{Error: ErrorInvalidUserID})
	}
	log := logger.Log(requestCtx).With(zap.String("userID", userID))
	log.Debug(requestCtx, LogHandlerFetchProfile)

	result := h.useCase.FetchProfileSync(requestCtx, userID)

	return sendJSON(ctx, StatusFromResult(result), FetchResponse{
		UserID:    userID,
		Result:    result.String(),
		Retryable: result.Retryable(),
	})
}

// GetProfile возвращает профиль из кэша.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	userID, err := userIDParam(ctx)
	if err != nil {
		logger.Log(requestCtx).Warn(requestCtx, ErrorInvalidUserID, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, ErrorResponse{Error: ErrorInvalidUserID})
	}
	log := logger.Log(requestCtx).With(zap.String("userID", userID))
	log.Debug(requestCtx, LogHandlerGetProfile)

	profile, found, err := h.cache.Lookup(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToReadCache, zap.Error(err))
		return sendJSON(ctx, fiber.StatusInternalServerError, ErrorResponse{Error: ErrorFailedToReadCache})
	}
	if !found {
		return sendJSON(ctx, fiber.StatusNotFound, ErrorResponse{Error: ErrorProfileNotCached})
	}

	return sendJSON(ctx, fiber.StatusOK, ProfileResponse{
		UserID:   profile.ID,
		FullName: profile.FullName,
		ImageURL: profile.ImageURL,
	})
}

// Health сообщает, готов ли сервис обслуживать запросы.
func (h *Handler) Health(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	for _, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(requestCtx); err != nil {
			logger.Log(requestCtx).Warn(requestCtx, ErrorNotReady, zap.Error(err))
			return sendJSON(ctx, fiber.StatusServiceUnavailable, HealthResponse{Status: StatusUnavailable, Error: err.Error()})
		}
	}

	return sendJSON(ctx, fiber.StatusOK, HealthResponse{Status: StatusOK})
}

// NotFound отвечает на несуществующие маршруты.
func (h *Handler) NotFound(ctx fiber.Ctx) error {
	return sendJSON(ctx, fiber.StatusNotFound, ErrorResponse{Error: ErrorRouteNotFound})
}

// StatusFromResult переводит итог получения профиля в HTTP статус.
func StatusFromResult(result entities.UseCaseResult) int {
	switch result {
	case entities.ResultSuccess:
		return fiber.StatusOK
	case entities.ResultNetworkError:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadGateway
	}
}

// userIDParam возвращает идентификатор пользователя из пути в декодированном виде.
// Маршрутизатор отдает сегмент как есть, поэтому "a%2Fb" здесь становится "a/b".
func userIDParam(ctx fiber.Ctx) (string, error) {
	userID, err := url.PathUnescape(ctx.Params(paramUserID))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorInvalidUserID, err)
	}
	return userID, nil
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToSendResponse, err)
	}
	return nil
}
