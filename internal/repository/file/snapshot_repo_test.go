package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_LoadEmpty(t *testing.T) {
	repo, err := NewSnapshotRepo(t.TempDir(), "bms_data")
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, e.ErrSnapshotNotFound)
}

func TestSnapshotRepo_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewSnapshotRepo(filepath.Join(dir, "nested"), "bms_data")
	require.NoError(t, err)
	ctx := context.Background()

	data, err := domain.MarshalState(domain.DefaultState())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, data))
	require.NoError(t, repo.Save(ctx, data))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(got))

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "bms_data.json", entries[0].Name())
}

func TestSnapshotRepo_CanceledContext(t *testing.T) {
	repo, err := NewSnapshotRepo(t.TempDir(), "bms_data")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, []byte("{}")), context.Canceled)
}
