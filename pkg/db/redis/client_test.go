package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilefetch/pkg/db/redis"
)

func TestNewClient_Success(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := redis.NewClient(context.Background(), redis.Config{Addr: s.Addr()})

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}

func TestNewClient_ConnectionFailure(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	client, err := redis.NewClient(context.Background(), redis.Config{
		Addr:        addr,
		DialTimeout: 100 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
