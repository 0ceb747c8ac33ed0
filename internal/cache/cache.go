// Package cache persists solved mazes in SQLite, keyed by the SHA-256 of
// the maze byte layout, so a repeated solve request skips the search.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors.
var (
	ErrNotFound    = errors.New("cache: entry not found")
	ErrClosed      = errors.New("cache: store is closed")
	ErrCorruptPath = errors.New("cache: stored path is corrupt")
)

const schema = `CREATE TABLE IF NOT EXISTS solutions (
    key TEXT PRIMARY KEY,
    id TEXT NOT NULL,
    solver TEXT NOT NULL,
    nodes INTEGER NOT NULL,
    path BLOB,
    created_at INTEGER NOT NULL
);`

// Entry is one cached solution.
type Entry struct {
	ID             string // assigned by Put
	Solver         string
	NodesEvaluated int
	Path           []maze.Position
	CreatedAt      time.Time // assigned by Put
}

// Store is a SQLite-backed solution cache, safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	log    *logrus.Logger
	closed bool
}

// Key returns the hex SHA-256 of a maze layout.
func Key(layout []byte) string {
	sum := sha256.Sum256(layout)
	return hex.EncodeToString(sum[:])
}

// Open creates the parent directory if needed, opens the database at path
// and ensures the schema exists.
func Open(path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache schema: %w", err)
	}

	log.WithField("path", path).Debug("solution cache opened")
	return &Store{db: db, log: log}, nil
}

// Get returns the entry stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Entry{}, ErrClosed
	}

	var (
		e       Entry
		blob    []byte
		created int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, solver, nodes, path, created_at FROM solutions WHERE key = ?`, key,
	).Scan(&e.ID, &e.Solver, &e.NodesEvaluated, &blob, &created)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.WithField("key", short(key)).Debug("cache miss")
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("cache get: %w", err)
	}
	if e.Path, err = decodePath(blob); err != nil {
		return Entry{}, err
	}
	e.CreatedAt = time.Unix(0, created)

	s.log.WithFields(logrus.Fields{"key": short(key), "id": e.ID}).Debug("cache hit")
	return e, nil
}

// Put stores e under key, replacing any previous entry, and returns the
// stored entry with its ID and CreatedAt filled in.
func (s *Store) Put(ctx context.Context, key string, e Entry) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Entry{}, ErrClosed
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO solutions (key, id, solver, nodes, path, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		key, e.ID, e.Solver, e.NodesEvaluated, encodePath(e.Path), e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("cache put: %w", err)
	}

	s.log.WithFields(logrus.Fields{"key": short(key), "id": e.ID, "solver": e.Solver}).Debug("cache store")
	return e, nil
}

// Close releases the database. Get and Put return ErrClosed afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// encodePath packs each position as two big-endian uint16 values.
func encodePath(path []maze.Position) []byte {
	out := make([]byte, 0, 4*len(path))
	for _, p := range path {
		out = binary.BigEndian.AppendUint16(out, uint16(p.Row))
		out = binary.BigEndian.AppendUint16(out, uint16(p.Col))
	}
	return out
}

func decodePath(blob []byte) ([]maze.Position, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(blob), ErrCorruptPath)
	}
	out := make([]maze.Position, 0, len(blob)/4)
	for i := 0; i < len(blob); i += 4 {
		out = append(out, maze.Pos(
			int(binary.BigEndian.Uint16(blob[i:])),
			int(binary.BigEndian.Uint16(blob[i+2:])),
		))
	}
	return out, nil
}

func short(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}
