package memory

import (
	"context"
	"testing"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepo()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, e.ErrSnapshotNotFound)

	payload := []byte(`{"products":[]}`)
	require.NoError(t, repo.Save(ctx, payload))
	payload[0] = 'X'

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, string(got))

	require.NoError(t, repo.Save(ctx, []byte(`{}`)))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))
}
