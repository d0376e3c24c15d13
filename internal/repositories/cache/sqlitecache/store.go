package sqlitecache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store is the local fallback tier. Each collection is persisted as a
// single JSON document in a key/value table: an object mapping record
// identity to the cached record shape.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStore opens (creating if needed) the cache database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "crewdesk_cache.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create cache dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// readDoc unmarshals the named collection document into out. A missing
// document is not an error; found reports whether anything was read.
func (s *Store) readDoc(name string, out any) (found bool, err error) {
	var payload []byte
	row := s.db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, name)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("read cache document %q: %w", name, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode cache document %q: %w", name, err)
	}
	return true, nil
}

// writeDoc marshals v and upserts it as the named collection document.
func (s *Store) writeDoc(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache document %q: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		name, payload,
	); err != nil {
		return fmt.Errorf("write cache document %q: %w", name, err)
	}
	return nil
}
