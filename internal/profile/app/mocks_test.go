package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"profilefetch/internal/profile/domain/entities"
)

type mockProfileEndpoint struct {
	mock.Mock
}

func (m *mockProfileEndpoint) FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entities.EndpointResult), args.Error(1)
}

type mockProfileCache struct {
	mock.Mock
}

func (m *mockProfileCache) Store(ctx context.Context, profile entities.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockProfileCache) Lookup(ctx context.Context, userID string) (entities.UserProfile, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entities.UserProfile), args.Bool(1), args.Error(2)
}

func (m *mockProfileCache) Close() error {
	return m.Called().Error(0)
}

// profileEndpointTd - настраиваемый двойник сервиса профилей, запоминающий последний userID.
type profileEndpointTd struct {
	userID string
	calls  int

	isAuthError    bool
	isServerError  bool
	isGeneralError bool
	isNetworkError bool
}

func (e *profileEndpointTd) FetchProfile(_ context.Context, userID string) (entities.EndpointResult, error) {
	e.userID = userID
	e.calls++

	switch {
	case e.isAuthError:
		return entities.EndpointResult{Status: entities.StatusAuthError}, nil
	case e.isServerError:
		return entities.EndpointResult{Status: entities.StatusServerError}, nil
	case e.isGeneralError:
		return entities.EndpointResult{Status: entities.StatusGeneralError}, nil
	case e.isNetworkError:
		return entities.EndpointResult{}, entities.NewNetworkError("fetch profile", nil)
	default:
		return entities.EndpointResult{
			Status:  entities.StatusSuccess,
			Profile: entities.UserProfile{ID: userID, FullName: "full name", ImageURL: "image url"},
		}, nil
	}
}

// profileCacheTd хранит один профиль, как кэш с единственной ячейкой.
type profileCacheTd struct {
	profile entities.UserProfile
	stores  int
}

func (c *profileCacheTd) Store(_ context.Context, profile entities.UserProfile) error {
	c.profile = profile
	c.stores++
	return nil
}

func (c *profileCacheTd) Lookup(_ context.Context, userID string) (entities.UserProfile, bool, error) {
	if c.profile.IsZero() || c.profile.ID != userID {
		return entities.UserProfile{}, false, nil
	}
	return c.profile, true, nil
}

func (c *profileCacheTd) Close() error {
	return nil
}
