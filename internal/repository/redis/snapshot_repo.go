package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/retail-core/pkg/clients"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SnapshotRepo хранит слот состояния под одним ключом Redis.
type SnapshotRepo struct {
	client *clients.RedisClient
	key    string
}

func NewSnapshotRepo(client *clients.RedisClient, key string) *SnapshotRepo {
	return &SnapshotRepo{
		client: client,
		key:    key,
	}
}

// Load читает снимок. Если ключа нет, возвращает e.ErrSnapshotNotFound.
func (s *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Client.Get(ctx, s.key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, e.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// Save перезаписывает снимок целиком, без TTL.
func (s *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	if err := s.client.Client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
