package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/jimlawless/whereami"
)

// SnapshotRepo хранит слот состояния в одном JSON-файле <dir>/<key>.json.
// Запись атомарна: временный файл и rename.
type SnapshotRepo struct {
	path string
}

func NewSnapshotRepo(dir, key string) (*SnapshotRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &SnapshotRepo{path: filepath.Join(dir, key+".json")}, nil
}

func (r *SnapshotRepo) Path() string {
	return r.path
}

func (r *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, e.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // после успешного rename файла уже нет

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := tmp.Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
