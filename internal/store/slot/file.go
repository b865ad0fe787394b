package slot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File keeps each key in its own JSON file: <dir>/<key>.json.
// Human-readable and portable. No locking; fine for a single local user.
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	if err := CheckKey(key); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read file: %w", err)
	}
	return string(b), true, nil
}

func (f *File) Set(key, value string) error {
	if err := CheckKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return writeFileAtomic(f.dir, f.path(key), []byte(value))
}

// writeFileAtomic writes to a temp file in dir and renames it over path, so
// readers see either the old or the new content, never a torn file.
func writeFileAtomic(dir, path string, b []byte) (err error) {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

func (f *File) Close() error { return nil }
