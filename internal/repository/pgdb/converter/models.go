package converter

import "time"

// SnapshotModel представляет запись таблицы app_snapshots в PostgreSQL.
type SnapshotModel struct {
	Key       string    `db:"key"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewSnapshotModel(key string, payload []byte) *SnapshotModel {
	return &SnapshotModel{
		Key:     key,
		Payload: payload,
	}
}
