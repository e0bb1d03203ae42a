package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mverdi/wallplan/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists projects in a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// OpenSQLiteStore opens (or creates) a SQLite project store at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the stored project or a default for an unknown key.
func (s *SQLiteStore) Load(ctx context.Context, key string) (model.Project, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM projects WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultProject(key), nil
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("query project: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return model.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}

// Save upserts the project for key.
func (s *SQLiteStore) Save(ctx context.Context, key string, p model.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

// List returns all saved keys in sorted order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM projects ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Delete removes a project. Deleting an absent key is a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
