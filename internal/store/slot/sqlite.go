package slot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "taskboard.db"

const createSlotsTable = `CREATE TABLE IF NOT EXISTS slots (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite keeps slots as rows of a single table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) taskboard.db inside dir.
func OpenSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createSlotsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	if err := CheckKey(key); err != nil {
		return "", false, err
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select slot: %w", err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	if err := CheckKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
