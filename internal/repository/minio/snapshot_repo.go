package minio

import (
	"bytes"
	"context"
	"io"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const jsonContentType = "application/json"

// SnapshotRepo хранит слот состояния одним объектом <key>.json в бакете MinIO.
type SnapshotRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
	key string
}

func NewSnapshotRepo(mc *minio.Client, cfg *cfg.MinIOCfg, key string) *SnapshotRepo {
	return &SnapshotRepo{
		mc:  mc,
		cfg: cfg,
		key: key,
	}
}

func (s *SnapshotRepo) objectKey() string {
	return s.key + ".json"
}

// Load скачивает объект снимка. Если объекта нет, возвращает e.ErrSnapshotNotFound.
func (s *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	obj, err := s.mc.GetObject(ctx, s.cfg.BucketName, s.objectKey(), minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, e.ErrSnapshotNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// Save загружает снимок целиком поверх предыдущего объекта.
func (s *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	reader := bytes.NewReader(data)

	_, err := s.mc.PutObject(ctx, s.cfg.BucketName, s.objectKey(), reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: jsonContentType,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
