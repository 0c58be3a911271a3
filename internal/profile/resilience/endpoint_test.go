package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"profilefetch/internal/profile/config"
	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/resilience"
)

type mockProfileEndpoint struct {
	mock.Mock
}

func (m *mockProfileEndpoint) FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entities.EndpointResult), args.Error(1)
}

func testConfig() config.ResilienceConfig {
	return config.ResilienceConfig{
		Enabled:          true,
		MaxAttempts:      3,
		InitialBackoff:   time.Millisecond,
		MaxBackoff:       time.Millisecond,
		ErrorThreshold:   2,
		OpenTimeout:      time.Hour,
		SuccessThreshold: 1,
	}
}

var profile = entities.UserProfile{ID: "abc", FullName: "John Doe", ImageURL: "https://img/abc.png"}

func TestEndpoint_RetriesNetworkFaults(t *testing.T) {
	next := new(mockProfileEndpoint)
	next.On("FetchProfile", mock.Anything, "abc").
		Return(entities.EndpointResult{}, entities.NewNetworkError("op", errors.New("reset"))).Twice()
	next.On("FetchProfile", mock.Anything, "abc").
		Return(entities.EndpointResult{Status: entities.StatusSuccess, Profile: profile}, nil).Once()

	ep := resilience.NewEndpoint(next, "profile", testConfig())
	result, err := ep.FetchProfile(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, entities.StatusSuccess, result.Status)
	assert.Equal(t, profile, result.Profile)
	assert.Equal(t, resilience.StateClosed, ep.State())
	next.AssertNumberOfCalls(t, "FetchProfile", 3)
}

func TestEndpoint_StatusesPassThrough(t *testing.T) {
	for _, status := range []entities.EndpointStatus{
		entities.StatusAuthError,
		entities.StatusServerError,
		entities.StatusGeneralError,
	} {
		t.Run(status.String(), func(t *testing.T) {
			next := new(mockProfileEndpoint)
			next.On("FetchProfile", mock.Anything, "abc").Return(entities.EndpointResult{Status: status}, nil)

			ep := resilience.NewEndpoint(next, "profile", testConfig())
			for i := 0; i < 3; i++ {
				result, err := ep.FetchProfile(context.Background(), "abc")
				require.NoError(t, err)
				assert.Equal(t, status, result.Status)
			}

			assert.Equal(t, resilience.StateClosed, ep.State())
			next.AssertNumberOfCalls(t, "FetchProfile", 3)
		})
	}
}

func TestEndpoint_NonNetworkErrorNotRetried(t *testing.T) {
	next := new(mockProfileEndpoint)
	next.On("FetchProfile", mock.Anything, "abc").Return(entities.EndpointResult{}, assert.AnError)

	ep := resilience.NewEndpoint(next, "profile", testConfig())
	_, err := ep.FetchProfile(context.Background(), "abc")

	require.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, entities.ErrNetworkFault)
	next.AssertNumberOfCalls(t, "FetchProfile", 1)
}

func TestEndpoint_OpenCircuitFailsFast(t *testing.T) {
	next := new(mockProfileEndpoint)
	next.On("FetchProfile", mock.Anything, "abc").
		Return(entities.EndpointResult{}, entities.NewNetworkError("op", errors.New("refused")))

	ep := resilience.NewEndpoint(next, "profile", testConfig())

	for i := 0; i < 2; i++ {
		_, err := ep.FetchProfile(context.Background(), "abc")
		require.ErrorIs(t, err, entities.ErrNetworkFault)
	}
	require.Equal(t, resilience.StateOpen, ep.State())
	next.AssertNumberOfCalls(t, "FetchProfile", 6)

	_, err := ep.FetchProfile(context.Background(), "abc")

	require.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.ErrorIs(t, err, entities.ErrNetworkFault)
	next.AssertNumberOfCalls(t, "FetchProfile", 6)
}
