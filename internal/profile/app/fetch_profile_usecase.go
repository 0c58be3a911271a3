// Package app содержит сценарии работы с профилями пользователей.
package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/api"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/internal/profile/ports/endpoint"
	"profilefetch/pkg/logger"
)

const (
	methodFetchProfileSync = "FetchProfileSync"

	msgFetchingProfile      = "fetching user profile"
	msgEmptyUserIDProvided  = "empty user ID provided"
	msgProfileCached        = "user profile fetched and cached"
	msgEndpointRejected     = "profile endpoint returned error status"
	msgUnknownStatus        = "profile endpoint returned unknown status"
	msgNetworkFault         = "network fault while fetching profile"
	msgUnexpectedError      = "unexpected profile endpoint error"
	msgEmptyProfileReturned = "profile endpoint returned empty profile"
	msgProfileIDMismatch    = "profile endpoint returned profile for another user"

	msgErrStoringProfile = "failed to store profile in cache"
)

// FetchProfileUseCaseImpl реализует api.FetchProfileUseCase.
type FetchProfileUseCaseImpl struct {
	endpoint endpoint.ProfileEndpoint
	cache    cache.ProfileCache
}

// NewFetchProfileUseCase создает сценарий получения профиля.
func NewFetchProfileUseCase(profileEndpoint endpoint.ProfileEndpoint, profileCache cache.ProfileCache) api.FetchProfileUseCase {
	return &FetchProfileUseCaseImpl{
		endpoint: profileEndpoint,
		cache:    profileCache,
	}
}

// FetchProfileSync запрашивает профиль и сохраняет его в кэш только при успешном ответе.
// Статусы AUTH, SERVER и GENERAL сводятся к ResultFailure, транспортный сбой - к ResultNetworkError.
func (u *FetchProfileUseCaseImpl) FetchProfileSync(ctx context.Context, userID string) entities.UseCaseResult {
	log := logger.Log(ctx).With(zap.String("method", methodFetchProfileSync), zap.String("userID", userID))
	log.Debug(ctx, msgFetchingProfile)

	if userID == "" {
		log.Warn(ctx, msgEmptyUserIDProvided)
		return entities.ResultFailure
	}

	result, err := u.endpoint.FetchProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNetworkFault) {
			log.Warn(ctx, msgNetworkFault, zap.Error(err))
			return entities.ResultNetworkError
		}
		log.Error(ctx, msgUnexpectedError, zap.Error(err))
		return entities.ResultFailure
	}

	log = log.With(zap.Stringer("endpoint_status", result.Status))

	switch result.Status {
	case entities.StatusSuccess:
		return u.cacheProfile(ctx, log, userID, result.Profile)
	case entities.StatusAuthError, entities.StatusServerError, entities.StatusGeneralError:
		log.Info(ctx, msgEndpointRejected)
		return entities.ResultFailure
	default:
		log.Error(ctx, msgUnknownStatus)
		return entities.ResultFailure
	}
}

func (u *FetchProfileUseCaseImpl) cacheProfile(
	ctx context.Context,
	log *logger.Logger,
	userID string,
	profile entities.UserProfile,
) entities.UseCaseResult {
	if profile.IsZero() {
		log.Error(ctx, msgEmptyProfileReturned)
		return entities.ResultFailure
	}
	if profile.ID != userID {
		log.Error(ctx, msgProfileIDMismatch, zap.String("profileID", profile.ID))
		return entities.ResultFailure
	}

	if err := u.cache.Store(ctx, profile); err != nil {
		log.Error(ctx, msgErrStoringProfile, zap.Error(err))
		return entities.ResultFailure
	}

	log.Info(ctx, msgProfileCached)
	return entities.ResultSuccess
}
