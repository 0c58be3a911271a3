package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"profilefetch/internal/profile/app"
	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/api"
)

const userID = "abc"

func setUp() (*profileEndpointTd, *profileCacheTd, api.FetchProfileUseCase) {
	endpointTd := &profileEndpointTd{}
	cacheTd := &profileCacheTd{}
	return endpointTd, cacheTd, app.NewFetchProfileUseCase(endpointTd, cacheTd)
}

func TestNewFetchProfileUseCase(t *testing.T) {
	useCase := app.NewFetchProfileUseCase(&mockProfileEndpoint{}, &mockProfileCache{})

	require.NotNil(t, useCase)
	_, ok := useCase.(*app.FetchProfileUseCaseImpl)
	assert.True(t, ok)
}

func TestFetchProfileSync_Success(t *testing.T) {
	ctx := context.Background()

	t.Run("success returned", func(t *testing.T) {
		_, _, useCase := setUp()

		assert.Equal(t, entities.ResultSuccess, useCase.FetchProfileSync(ctx, userID))
	})

	t.Run("user profile cached", func(t *testing.T) {
		_, cacheTd, useCase := setUp()

		useCase.FetchProfileSync(ctx, userID)

		cached, found, err := cacheTd.Lookup(ctx, userID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, userID, cached.ID)
		assert.Equal(t, 1, cacheTd.stores)
	})

	t.Run("user ID passed to endpoint", func(t *testing.T) {
		endpointTd, _, useCase := setUp()

		useCase.FetchProfileSync(ctx, userID)

		assert.Equal(t, userID, endpointTd.userID)
		assert.Equal(t, 1, endpointTd.calls)
	})

	t.Run("user ID passed verbatim", func(t *testing.T) {
		endpointTd, _, useCase := setUp()
		rawID := "  Some/ID%20with spaces "

		useCase.FetchProfileSync(ctx, rawID)

		assert.Equal(t, rawID, endpointTd.userID)
	})
}

func TestFetchProfileSync_EndpointErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(*profileEndpointTd)
		expected entities.UseCaseResult
	}{
		{
			name:     "auth error",
			setup:    func(e *profileEndpointTd) { e.isAuthError = true },
			expected: entities.ResultFailure,
		},
		{
			name:     "server error",
			setup:    func(e *profileEndpointTd) { e.isServerError = true },
			expected: entities.ResultFailure,
		},
		{
			name:     "general error",
			setup:    func(e *profileEndpointTd) { e.isGeneralError = true },
			expected: entities.ResultFailure,
		},
		{
			name:     "network error",
			setup:    func(e *profileEndpointTd) { e.isNetworkError = true },
			expected: entities.ResultNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" result returned", func(t *testing.T) {
			endpointTd, _, useCase := setUp()
			tt.setup(endpointTd)

			assert.Equal(t, tt.expected, useCase.FetchProfileSync(ctx, userID))
			assert.Equal(t, 1, endpointTd.calls)
		})

		t.Run(tt.name+" profile not cached", func(t *testing.T) {
			endpointTd, cacheTd, useCase := setUp()
			tt.setup(endpointTd)

			useCase.FetchProfileSync(ctx, userID)

			_, found, err := cacheTd.Lookup(ctx, userID)
			require.NoError(t, err)
			assert.False(t, found)
			assert.True(t, cacheTd.profile.IsZero())
			assert.Zero(t, cacheTd.stores)
		})
	}
}

func TestFetchProfileSync_FailureKeepsPreviousCacheEntry(t *testing.T) {
	ctx := context.Background()
	endpointTd, cacheTd, useCase := setUp()

	require.Equal(t, entities.ResultSuccess, useCase.FetchProfileSync(ctx, userID))
	previous := cacheTd.profile

	endpointTd.isServerError = true
	assert.Equal(t, entities.ResultFailure, useCase.FetchProfileSync(ctx, userID))

	cached, found, err := cacheTd.Lookup(ctx, userID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, previous, cached)
	assert.Equal(t, 1, cacheTd.stores)
}

func TestFetchProfileSync_Idempotent(t *testing.T) {
	ctx := context.Background()

	for _, setup := range []func(*profileEndpointTd){
		func(*profileEndpointTd) {},
		func(e *profileEndpointTd) { e.isAuthError = true },
		func(e *profileEndpointTd) { e.isNetworkError = true },
	} {
		endpointTd, _, useCase := setUp()
		setup(endpointTd)

		first := useCase.FetchProfileSync(ctx, userID)
		second := useCase.FetchProfileSync(ctx, userID)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, endpointTd.calls)
	}
}

func TestFetchProfileSync_DefensiveCases(t *testing.T) {
	ctx := context.Background()
	profile := entities.UserProfile{ID: userID, FullName: "John Doe", ImageURL: "https://img/abc.png"}

	tests := []struct {
		name      string
		userID    string
		mockSetup func(*mockProfileEndpoint, *mockProfileCache)
		expected  entities.UseCaseResult
	}{
		{
			name:      "empty user ID does not reach endpoint",
			userID:    "",
			mockSetup: func(*mockProfileEndpoint, *mockProfileCache) {},
			expected:  entities.ResultFailure,
		},
		{
			name:   "unknown status is failure",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, _ *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{Status: entities.EndpointStatus(99), Profile: profile}, nil).Once()
			},
			expected: entities.ResultFailure,
		},
		{
			name:   "non network error is failure",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, _ *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{}, errors.New("decode failed")).Once()
			},
			expected: entities.ResultFailure,
		},
		{
			name:   "wrapped network error is network error",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, _ *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{}, fmt.Errorf("retry: %w", entities.ErrNetworkFault)).Once()
			},
			expected: entities.ResultNetworkError,
		},
		{
			name:   "success with empty profile is not cached",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, _ *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{Status: entities.StatusSuccess}, nil).Once()
			},
			expected: entities.ResultFailure,
		},
		{
			name:   "success with foreign profile is not cached",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, _ *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{Status: entities.StatusSuccess, Profile: entities.UserProfile{ID: "other"}}, nil).Once()
			},
			expected: entities.ResultFailure,
		},
		{
			name:   "cache store error is failure",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, c *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{Status: entities.StatusSuccess, Profile: profile}, nil).Once()
				c.On("Store", mock.Anything, profile).Return(errors.New("redis down")).Once()
			},
			expected: entities.ResultFailure,
		},
		{
			name:   "success stores exact profile",
			userID: userID,
			mockSetup: func(e *mockProfileEndpoint, c *mockProfileCache) {
				e.On("FetchProfile", mock.Anything, userID).
					Return(entities.EndpointResult{Status: entities.StatusSuccess, Profile: profile}, nil).Once()
				c.On("Store", mock.Anything, profile).Return(nil).Once()
			},
			expected: entities.ResultSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEndpoint := new(mockProfileEndpoint)
			mockCache := new(mockProfileCache)
			tt.mockSetup(mockEndpoint, mockCache)

			useCase := app.NewFetchProfileUseCase(mockEndpoint, mockCache)

			assert.Equal(t, tt.expected, useCase.FetchProfileSync(ctx, tt.userID))

			mockEndpoint.AssertExpectations(t)
			mockCache.AssertExpectations(t)
			mockCache.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
		})
	}
}
