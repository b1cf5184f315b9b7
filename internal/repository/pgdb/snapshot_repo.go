package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/retail-core/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SnapshotRepo хранит слот состояния одной строкой таблицы app_snapshots.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	key  string
}

func NewSnapshotRepo(pool *pgxpool.Pool, key string) *SnapshotRepo {
	return &SnapshotRepo{
		pool: pool,
		key:  key,
	}
}

// Load возвращает payload строки по ключу слота.
func (s *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	query := `
		SELECT key, payload, updated_at
		FROM app_snapshots
		WHERE key = $1
	`

	var model converter.SnapshotModel
	err := s.pool.QueryRow(ctx, query, s.key).Scan(&model.Key, &model.Payload, &model.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return model.Payload, nil
}

// Save перезаписывает снимок в отдельной транзакции.
func (s *SnapshotRepo) Save(ctx context.Context, data []byte) (err error) {
	const op = "SnapshotRepo.Save"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.pool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return e.Wrap(op, e.ErrTransactionNotFound)
	}
	ctx = tr.WithTx(ctx, pgxTx)

	if err = s.upsert(ctx, converter.NewSnapshotModel(s.key, data)); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// upsert выполняет запись в рамках транзакции из контекста.
func (s *SnapshotRepo) upsert(ctx context.Context, model *converter.SnapshotModel) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO app_snapshots (key, payload)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW();
	`

	if _, err := tx.Exec(ctx, query, model.Key, model.Payload); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
