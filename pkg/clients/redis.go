package clients

import (
	"context"
	"time"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// RedisClient держит соединение со слотом состояния в Redis.
type RedisClient struct {
	Client      *r.Client
	pingTimeout time.Duration
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	pingTimeout := cfg.DialTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	return &RedisClient{
		Client:      r.NewClient(redisOptions(cfg)),
		pingTimeout: pingTimeout,
	}
}

func redisOptions(cfg *cfg.RedisCfg) *r.Options {
	return &r.Options{
		Addr:         cfg.Addr,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	}
}

// Ping проверяет доступность сервера при старте. Ожидание ограничено DialTimeout.
func (c *RedisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (c *RedisClient) Addr() string {
	return c.Client.Options().Addr
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
