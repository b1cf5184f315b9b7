package minio

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/pkg/clients"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_SaveLoad(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT is not set")
	}

	mcfg := &cfg.MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        "retail-core-test",
		MinioRootUser:     os.Getenv("MINIO_ROOT_USER"),
		MinioRootPassword: os.Getenv("MINIO_ROOT_PASSWORD"),
	}

	mc, err := clients.NewMinIOClient(mcfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := clients.EnsureBucket(ctx, mc, mcfg.BucketName); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	repo := NewSnapshotRepo(mc, mcfg, "test_"+time.Now().Format("20060102150405.000000000"))

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, e.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, []byte(`{"products":[]}`)))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, string(got))
}
