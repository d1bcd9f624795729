package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tliron/commonlog"

	"github.com/chazu/planwire/pkg/plan"
	"github.com/chazu/planwire/pkg/wire"
)

// ErrPlanNotFound indicates the requested plan isn't cached
var ErrPlanNotFound = errors.New("plan not found")

var log = commonlog.GetLogger("planwire.cache")

// Store handles SQLite storage for encoded plans, keyed by content hash.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// NewStore opens (or creates) a plan cache at dbPath.
func NewStore(dbPath string) (*Store, error) {
	s := &Store{dbPath: dbPath}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = db

	// Set busy timeout for concurrent access
	_, err = db.Exec("PRAGMA busy_timeout = 5000")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS plans (
		key BLOB PRIMARY KEY,
		meta BLOB NOT NULL,
		body BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put encodes a plan tree in both forms and stores the full stream under
// the reduced-form content key. Storing the same logical plan twice
// overwrites the previous entry. The computed key is returned so callers
// can hand it to peers.
func (s *Store) Put(root plan.Node, rtable *plan.List, command plan.CmdType) (Key, error) {
	key, err := KeyFor(root, rtable)
	if err != nil {
		return Key{}, err
	}

	body, err := wire.Encode(root)
	if err != nil {
		return Key{}, err
	}

	meta := NewMeta(len(body), command)
	metaBytes, err := MarshalMeta(&meta)
	if err != nil {
		return Key{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO plans (key, meta, body) VALUES (?, ?, ?)",
		key[:], metaBytes, body,
	)
	if err != nil {
		return Key{}, fmt.Errorf("saving plan: %w", err)
	}

	log.Debugf("cached plan %s (%d bytes)", key, len(body))
	return key, nil
}

// Get retrieves a cached plan's full encoding and metadata by key.
func (s *Store) Get(key Key) ([]byte, *Meta, error) {
	var metaBytes, body []byte
	err := s.db.QueryRow("SELECT meta, body FROM plans WHERE key = ?", key[:]).
		Scan(&metaBytes, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrPlanNotFound
		}
		return nil, nil, fmt.Errorf("querying plan: %w", err)
	}

	meta, err := UnmarshalMeta(metaBytes)
	if err != nil {
		return nil, nil, err
	}
	return body, meta, nil
}

// Has reports whether a plan with the given key is cached.
func (s *Store) Has(key Key) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM plans WHERE key = ?", key[:]).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying plan: %w", err)
	}
	return true, nil
}

// Delete removes a cached plan. Deleting a missing key is not an error.
func (s *Store) Delete(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM plans WHERE key = ?", key[:])
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

// Entry pairs a plan key with its stored metadata.
type Entry struct {
	Key  Key
	Meta *Meta
}

// List returns every cached entry's key and metadata, ordered by key.
// Bodies are not loaded.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT key, meta FROM plans ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var rawKey, metaBytes []byte
		if err := rows.Scan(&rawKey, &metaBytes); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		var e Entry
		copy(e.Key[:], rawKey)
		if e.Meta, err = UnmarshalMeta(metaBytes); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune evicts the oldest entries until at most max remain. A max of zero
// or less disables pruning. Returns the number of evicted plans. Age is
// insertion order; overwriting an entry refreshes it.
func (s *Store) Prune(max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM plans WHERE rowid IN (
		SELECT rowid FROM plans ORDER BY rowid DESC LIMIT -1 OFFSET ?
	)`, max)
	if err != nil {
		return 0, fmt.Errorf("pruning plans: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning plans: %w", err)
	}
	if n > 0 {
		log.Infof("evicted %d plans (limit %d)", n, max)
	}
	return int(n), nil
}

// Len returns the number of cached plans.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plans: %w", err)
	}
	return n, nil
}
