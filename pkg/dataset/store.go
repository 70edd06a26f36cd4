package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// ObjectStore opens named tables. Names are relative, slash separated.
type ObjectStore interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirStore reads tables from a local directory.
type DirStore struct {
	Root string
}

func NewDirStore(root string) *DirStore {
	return &DirStore{Root: root}
}

func (d *DirStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(d.Root, filepath.FromSlash(name)))
}
