package usecase

import "context"

// SnapshotRepository описывает слот ключ-значение, в котором целиком лежит сериализованное состояние.
// Load возвращает e.ErrSnapshotNotFound, если слот пуст.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
