package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/performance-dashboard/internal/config"
)

func TestDisabledRedis(t *testing.T) {
	cache := NewRedis(config.RedisConfig{}, zap.NewNop())
	defer cache.Close()

	assert.False(t, cache.Enabled())
	assert.ErrorIs(t, cache.Ping(context.Background()), ErrRedisDisabled)

	require.NoError(t, cache.SetRender(context.Background(), "k", []byte("png")))
	data, ok, err := cache.GetRender(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestNilRedisIsDisabled(t *testing.T) {
	var cache *Redis
	assert.False(t, cache.Enabled())
	assert.ErrorIs(t, cache.Ping(context.Background()), ErrRedisDisabled)
	cache.Close()
}

func TestRedisRenderRoundTrip(t *testing.T) {
	server := miniredis.RunT(t)
	cache := NewRedis(config.RedisConfig{Addr: server.Addr(), CacheTTLSeconds: 60}, zap.NewNop())
	defer cache.Close()

	require.True(t, cache.Enabled())
	require.NoError(t, cache.Ping(context.Background()))

	t.Run("Miss returns no data and no error", func(t *testing.T) {
		data, ok, err := cache.GetRender(context.Background(), "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("Hit returns the stored bytes", func(t *testing.T) {
		require.NoError(t, cache.SetRender(context.Background(), "medicina", []byte("png-bytes")))
		assert.True(t, server.Exists(renderKeyPrefix+"medicina"))
		assert.Equal(t, 60*time.Second, server.TTL(renderKeyPrefix+"medicina"))

		data, ok, err := cache.GetRender(context.Background(), "medicina")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("Entries expire after the TTL", func(t *testing.T) {
		require.NoError(t, cache.SetRender(context.Background(), "short", []byte("x")))
		server.FastForward(61 * time.Second)

		_, ok, err := cache.GetRender(context.Background(), "short")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Server errors are returned", func(t *testing.T) {
		server.SetError("LOADING dataset")
		defer server.SetError("")

		_, ok, err := cache.GetRender(context.Background(), "medicina")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Error(t, cache.SetRender(context.Background(), "medicina", []byte("x")))
	})
}

func TestRedisWithUnreachableClient(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	cache := NewRedisWithClient(client, time.Minute)
	defer cache.Close()

	require.True(t, cache.Enabled())
	assert.Error(t, cache.Ping(context.Background()))

	data, ok, err := cache.GetRender(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.Error(t, cache.SetRender(context.Background(), "k", []byte("png")))
}
