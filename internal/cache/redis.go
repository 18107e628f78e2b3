package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/timkado/api/daisi-supportdesk/internal/apperrors"
	"gitlab.com/timkado/api/daisi-supportdesk/pkg/logger"
)

const connectTimeout = 5 * time.Second

// Config holds connection settings for the Redis client.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client wraps the go-redis client. It is constructed once at startup and
// injected where needed; there is no lazily-initialized global.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a Redis client and verifies connectivity once. A failed
// initial ping is reported but does not prevent construction: the health
// check surfaces the dependency state on every probe.
func NewClient(cfg Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  connectTimeout,
		WriteTimeout: connectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis unreachable at startup, continuing", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Log.Info("Redis client initialized", zap.String("addr", cfg.Addr))
	}

	return &Client{rdb: rdb}
}

// Ping verifies Redis reachability. Used by the health check.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis ping failed: %w", apperrors.ErrUnavailable, err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	logger.Log.Info("Closing redis client")
	return c.rdb.Close()
}
