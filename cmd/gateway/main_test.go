package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilecache "profilefetch/internal/profile/adapters/cache"
	"profilefetch/internal/profile/app"
	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/pkg/logger"
	"profilefetch/pkg/shutdown"
)

type slowEndpoint struct {
	started chan struct{}
	delay   time.Duration
}

func (e *slowEndpoint) FetchProfile(_ context.Context, userID string) (entities.EndpointResult, error) {
	close(e.started)
	time.Sleep(e.delay)
	return entities.EndpointResult{
		Status:  entities.StatusSuccess,
		Profile: entities.UserProfile{ID: userID, FullName: "John Doe", ImageURL: "https://img/abc.png"},
	}, nil
}

type closeRecorder struct {
	cache.ProfileCache
	onClose func()
}

func (c *closeRecorder) Close() error {
	c.onClose()
	return c.ProfileCache.Close()
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return log
}

func TestShutdownHooks_Order(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, name)
	}

	profileCache := &closeRecorder{ProfileCache: profilecache.NewMemoryCache(), onClose: func() { record("cache") }}
	hooks := shutdownHooks(newTestLogger(t),
		func(context.Context) error { record("server"); return nil },
		func(context.Context) error { record("endpoint"); return assert.AnError },
		profileCache,
	)

	shutdown.Run(context.Background(), time.Second, hooks...)

	assert.Equal(t, []string{"server", "endpoint", "cache"}, order)
}

func TestShutdownHooks_InFlightFetchCompletes(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisCache := profilecache.NewRedisCache(client, time.Minute)

	ep := &slowEndpoint{started: make(chan struct{}), delay: 50 * time.Millisecond}
	useCase := app.NewFetchProfileUseCase(ep, redisCache)

	var result entities.UseCaseResult
	fetchDone := make(chan struct{})
	go func() {
		defer close(fetchDone)
		result = useCase.FetchProfileSync(ctx, "abc")
	}()
	<-ep.started

	drainServer := func(ctx context.Context) error {
		select {
		case <-fetchDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	closeEndpoint := func(context.Context) error { return nil }

	shutdown.Run(ctx, time.Second, shutdownHooks(newTestLogger(t), drainServer, closeEndpoint, redisCache)...)

	<-fetchDone
	assert.Equal(t, entities.ResultSuccess, result)
	assert.True(t, mr.Exists(profilecache.Key("abc")))
}
