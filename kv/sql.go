package kv

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
);
`

// sqlStore implements Store over a single kv table. The query strings are
// fixed at open time because sqlite and postgres disagree on placeholders.
type sqlStore struct {
	db         *sql.DB
	getStmt    string
	setStmt    string
	removeStmt string
}

// OpenSQLite opens (creating if needed) a sqlite-backed store at path.
// This is the default backend: a single local file, no server.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	return newSQLStore(db,
		"SELECT v FROM kv WHERE k = ?",
		"INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT (k) DO UPDATE SET v = excluded.v",
		"DELETE FROM kv WHERE k = ?",
	)
}

// OpenPostgres opens a postgres-backed store using the given connection URL.
// Same table, same semantics as sqlite; this does not make the store safe
// for multiple concurrent accessors.
func OpenPostgres(url string) (Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres store: %w", err)
	}
	return newSQLStore(db,
		"SELECT v FROM kv WHERE k = $1",
		"INSERT INTO kv (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = excluded.v",
		"DELETE FROM kv WHERE k = $1",
	)
}

func newSQLStore(db *sql.DB, getStmt, setStmt, removeStmt string) (Store, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store ping failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &sqlStore{db: db, getStmt: getStmt, setStmt: setStmt, removeStmt: removeStmt}, nil
}

func (s *sqlStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(s.getStmt, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqlStore) Set(key, value string) error {
	if _, err := s.db.Exec(s.setStmt, key, value); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Remove(key string) error {
	if _, err := s.db.Exec(s.removeStmt, key); err != nil {
		return fmt.Errorf("kv remove %q: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
