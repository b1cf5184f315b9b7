package clients

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(&cfg.RedisCfg{
		Addr:        "cache:6379",
		User:        "pos",
		Password:    "secret",
		DB:          2,
		MaxRetries:  4,
		DialTimeout: 3 * time.Second,
		Timeout:     7 * time.Second,
	})

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pos", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.MaxRetries)
	assert.Equal(t, 3*time.Second, opts.DialTimeout)
	assert.Equal(t, 7*time.Second, opts.ReadTimeout)
	assert.Equal(t, 7*time.Second, opts.WriteTimeout)
}

func TestRedisClient_PingUnreachable(t *testing.T) {
	// свободный порт: слушатель закрывается сразу после выбора адреса
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	client := NewRedisClient(&cfg.RedisCfg{Addr: addr, MaxRetries: -1, DialTimeout: 500 * time.Millisecond})
	defer client.Close()

	assert.Equal(t, addr, client.Addr())
	assert.Error(t, client.Ping(context.Background()))
}
