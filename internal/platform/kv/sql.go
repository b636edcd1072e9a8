package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// dialect carries the statements that differ between SQL engines.
type dialect struct {
	name   string
	schema string
	get    string
	upsert string
	delete string
}

var sqliteDialect = dialect{
	name: "sqlite",
	schema: `CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	get: `SELECT value FROM kv_entries WHERE key = ?`,
	upsert: `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
	delete: `DELETE FROM kv_entries WHERE key = ?`,
}

var postgresDialect = dialect{
	name: "postgres",
	schema: `CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	get: `SELECT value FROM kv_entries WHERE key = $1`,
	upsert: `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
	delete: `DELETE FROM kv_entries WHERE key = $1`,
}

// SQL is a Store kept in a single kv_entries table.
type SQL struct {
	db *sql.DB
	d  dialect
}

// OpenSQLite opens a SQLite-backed store at path.
func OpenSQLite(ctx context.Context, path string) (*SQL, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	return openSQL(ctx, "sqlite", dsn, sqliteDialect)
}

// OpenPostgres opens a PostgreSQL-backed store.
func OpenPostgres(ctx context.Context, databaseURL string) (*SQL, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database url is required")
	}
	return openSQL(ctx, "postgres", databaseURL, postgresDialect)
}

// newSQL ensures the table exists on an already open database.
func newSQL(ctx context.Context, db *sql.DB, d dialect) (*SQL, error) {
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		return nil, fmt.Errorf("create kv_entries table: %w", err)
	}
	return &SQL{db: db, d: d}, nil
}

func openSQL(ctx context.Context, driver, dsn string, d dialect) (*SQL, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", d.name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", d.name, err)
	}
	store, err := newSQL(ctx, db, d)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, errNotConfigured
	}
	var value string
	err := s.db.QueryRowContext(ctx, s.d.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	if err := requireKey(key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.d.upsert, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	if _, err := s.db.ExecContext(ctx, s.d.delete, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
