// Package cache provides a durable, on-disk store for synthesized
// function signatures, backed by modernc.org/sqlite — kept from the
// host's own dependency set rather than introduced fresh, on the theory
// that a signature cache is exactly the kind of small embedded-persistence
// concern the host already reaches for SQLite to solve elsewhere.
package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/statictypes/internal/config"
	"github.com/funvibe/statictypes/internal/diagnostics"
	"github.com/funvibe/statictypes/internal/typesystem"
)

const schema = `
CREATE TABLE IF NOT EXISTS signatures (
	name        TEXT NOT NULL,
	source_hash TEXT NOT NULL,
	encoded     TEXT NOT NULL,
	PRIMARY KEY (name, source_hash)
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store persists durable Type signatures keyed by function name and a hash
// of the source they were derived from, so a change to the source
// invalidates every signature cached against the old hash without an
// explicit eviction pass.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a SQLite database at path (":memory:" for an
// ephemeral store, used by tests) and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put stores sig, which must be durable (never an arena-scratch type; a
// canonical is accepted and round-trips to the same canonical), under name
// and sourceHash, replacing any prior entry for the same key.
func (s *Store) Put(name, sourceHash string, sig *typesystem.Type) error {
	encoded := typesystem.TypeName(sig)
	_, err := s.db.Exec(
		`INSERT INTO signatures (name, source_hash, encoded) VALUES (?, ?, ?)
		 ON CONFLICT(name, source_hash) DO UPDATE SET encoded = excluded.encoded`,
		name, sourceHash, encoded,
	)
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", name, err)
	}
	return nil
}

// Get looks up a previously cached signature for name under sourceHash,
// round-tripping it back through the Parser. ok is false on a cache miss
// (including a hit under a different sourceHash); err is non-nil when the
// query itself fails or when a stored encoding fails to parse, which would
// indicate database corruption rather than ordinary absence.
func (s *Store) Get(name, sourceHash string) (sig *typesystem.Type, ok bool, err error) {
	var encoded string
	row := s.db.QueryRow(
		`SELECT encoded FROM signatures WHERE name = ? AND source_hash = ?`,
		name, sourceHash,
	)
	if err := row.Scan(&encoded); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: get %s: %w", name, err)
	}

	arena := typesystem.NewArena(0)
	defer arena.ClearArena()
	sink := diagnostics.NewCollectingSink()
	p := typesystem.NewParser(arena, config.Default(), sink)
	t, okParse := typesystem.ParseString(encoded, p)
	if !okParse {
		return nil, false, fmt.Errorf("cache: stored signature for %s does not parse: %q", name, encoded)
	}
	return typesystem.Durable(t), true, nil
}

// SetMeta records a small key/value fact about the cache (e.g. the
// typesystem config it was built under), for diagnostics rather than
// lookup logic.
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetMeta(key string) (string, bool, error) {
	var value string
	row := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
