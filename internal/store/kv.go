package store

import (
	"os"
	"path/filepath"

	"degen-prop/internal/errors"
)

// KV is the persistence boundary under the attempt store: a serialized blob
// per well-known key. Read is get-or-default-empty; write replaces the blob.
type KV interface {
	// Get returns the blob stored under key. ok is false when the key has
	// never been written; that is not an error.
	Get(key string) (value []byte, ok bool, err error)
	// Set replaces the blob stored under key.
	Set(key string, value []byte) error
	Close() error
}

// FileKV stores each key as a JSON file in a directory. Writes go through a
// temp file and rename so a crash never leaves a torn collection behind.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed KV rooted at path. If path has an extension
// it is treated as the file for CollectionKey's parent directory.
func NewFileKV(path string) (*FileKV, error) {
	dir := path
	if filepath.Ext(path) != "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.NewStoreError("open", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) keyPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get implements KV.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.NewStoreError("load", key, err)
	}
	return data, true, nil
}

// Set implements KV.
func (f *FileKV) Set(key string, value []byte) error {
	path := f.keyPath(key)
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return errors.NewStoreError("persist", key, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return errors.NewStoreError("persist", key, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStoreError("persist", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.NewStoreError("persist", key, err)
	}
	return nil
}

// Close implements KV. File handles are not held open between calls.
func (f *FileKV) Close() error {
	return nil
}
