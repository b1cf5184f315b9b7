package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/retail-core/pkg/e"
)

// SnapshotRepo держит слот состояния в памяти процесса.
type SnapshotRepo struct {
	mu   sync.Mutex
	data []byte
}

func NewSnapshotRepo() *SnapshotRepo {
	return &SnapshotRepo{}
}

func (r *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data == nil {
		return nil, e.ErrSnapshotNotFound
	}

	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = make([]byte, len(data))
	copy(r.data, data)
	return nil
}
