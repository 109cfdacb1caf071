package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/performance-dashboard/internal/config"
)

// ErrRedisDisabled is returned by Ping when no Redis address is configured.
var ErrRedisDisabled = errors.New("redis client not configured")

const renderKeyPrefix = "dashboard:render:"

// Redis wraps the go-redis client used as the rendered chart cache.
// A Redis with a nil Client is a disabled cache: reads miss, writes are dropped.
type Redis struct {
	Client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis using the provided configuration. When no address
// is configured the returned cache is disabled.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if !cfg.Enabled() {
		logger.Info("REDIS_ADDR not provided; render cache disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &Redis{Client: client, ttl: cfg.CacheTTL()}
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{Client: client, ttl: ttl}
}

// Enabled reports whether a client is configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return ErrRedisDisabled
	}
	return r.Client.Ping(ctx).Err()
}

// GetRender returns cached render bytes for key. A miss is (nil, false, nil).
func (r *Redis) GetRender(ctx context.Context, key string) ([]byte, bool, error) {
	if !r.Enabled() {
		return nil, false, nil
	}
	data, err := r.Client.Get(ctx, renderKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// SetRender stores render bytes under key with the configured TTL.
func (r *Redis) SetRender(ctx context.Context, key string, data []byte) error {
	if !r.Enabled() {
		return nil
	}
	return r.Client.Set(ctx, renderKeyPrefix+key, data, r.ttl).Err()
}
