package pgdb

import (
	"context"
	"os"
	"testing"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getPool подключается к DATABASE_URL; таблица app_snapshots должна быть создана миграциями.
func getPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func TestSnapshotRepo_SaveLoad(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	const key = "test_bms_data"

	_, err := pool.Exec(ctx, "DELETE FROM app_snapshots WHERE key = $1", key)
	require.NoError(t, err)

	repo := NewSnapshotRepo(pool, key)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, e.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, []byte(`{"sales": [], "language": "en"}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"sales": [], "language": "bn"}`)))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sales": [], "language": "bn"}`, string(got))
}
