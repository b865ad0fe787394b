// Package slot provides named key-value slots that survive restarts,
// the terminal counterpart of browser local storage.
package slot

import (
	"errors"
	"fmt"
	"strings"
)

// Slot stores one string value per key.
// Implementations are used from a single goroutine.
type Slot interface {
	// Get returns the value stored under key. ok is false when the key was never set.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value stored under key.
	Set(key, value string) error
	Close() error
}

var ErrBadKey = errors.New("slot: invalid key")

// Open returns the backend named by kind ("file" or "sqlite") rooted at dir.
func Open(kind, dir string) (Slot, error) {
	switch strings.ToLower(kind) {
	case "", "file":
		return NewFile(dir), nil
	case "sqlite":
		return OpenSQLite(dir)
	}
	return nil, fmt.Errorf("slot: unknown storage %q", kind)
}

// CheckKey reports ErrBadKey for keys that cannot name a slot.
func CheckKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return nil
}
