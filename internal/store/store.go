// Package store implements the key-value object store that backs all
// persistence in the Travel Planner. Records are JSON documents grouped into
// named collections, addressed by a string primary key, with named secondary
// indexes per collection.
//
// The backing engine is embedded SQLite (modernc.org/sqlite; pure Go, no
// server process, one local file per installation). Each collection is a
// table of (id, data) rows; secondary indexes are SQLite expression indexes
// over json_extract, so index names here are JSON field names, not columns.
//
// Individual operations are atomic. Multi-step sequences built on top of
// this package (cascade deletes, aggregation reads) are NOT wrapped in a
// transaction; see the repo package for where that matters.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/jeevamp6/travel-planner/internal/domain"
)

// collections maps every known collection name to the set of secondary
// index field names it supports. Operations reject unknown collection or
// index names before any SQL runs, which also keeps identifiers out of
// injection territory; only values are ever bound as parameters.
var collections = map[string]map[string]bool{
	"users":      {"email": true},
	"trips":      {"userId": true, "shareId": true},
	"stops":      {"tripId": true},
	"activities": {"tripId": true, "stopId": true},
	"expenses":   {"tripId": true, "stopId": true, "activityId": true},
}

// Store is a handle on the underlying database. Construct it with Open and
// inject it into repositories; there is no package-level instance.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// returns a Store. Pass ":memory:" for an ephemeral in-memory store.
//
// WAL mode keeps reads available during writes; foreign keys stay off:
// referential integrity between collections is the repo layer's job, the
// store itself is schema-free JSON.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: ping: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: set WAL mode: %w", err)
	}

	// The adapter serializes all access through database/sql anyway, and the
	// application is single-writer; one connection avoids SQLITE_BUSY noise.
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the underlying database. The Store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying *sql.DB for schema migrations (goose).
// Repositories should never touch this; they go through the typed methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Add inserts a record under id into the named collection.
// Returns domain-level duplicate information via ErrDuplicateKey (wrapped)
// when the primary key or any unique secondary index value already exists.
func (s *Store) Add(ctx context.Context, collection, id string, record any) error {
	if err := checkCollection(collection); err != nil {
		return fmt.Errorf("store.Add: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("store.Add: marshal %s record: %w", collection, err)
	}

	q := fmt.Sprintf(`INSERT INTO %s (id, data) VALUES (?, ?)`, collection)
	if _, err := s.db.ExecContext(ctx, q, id, string(data)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("store.Add: %s id %s: %w", collection, id, domain.ErrDuplicateKey)
		}
		return fmt.Errorf("store.Add: %s: %w", collection, err)
	}
	return nil
}

// Get loads the record stored under id into dest (a pointer to the record
// type). Returns ErrNotFound (wrapped) when no record exists.
func (s *Store) Get(ctx context.Context, collection, id string, dest any) error {
	if err := checkCollection(collection); err != nil {
		return fmt.Errorf("store.Get: %w", err)
	}

	q := fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, collection)

	var data []byte
	err := s.db.QueryRowContext(ctx, q, id).Scan(&data)
	if err == sql.ErrNoRows {
		return fmt.Errorf("store.Get: %s id %s: %w", collection, id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store.Get: %s: %w", collection, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("store.Get: unmarshal %s record: %w", collection, err)
	}
	return nil
}

// Put upserts the record under id: inserts when absent, replaces when
// present. A secondary unique index collision (e.g. changing a user's email
// to one already taken) still reports ErrDuplicateKey.
func (s *Store) Put(ctx context.Context, collection, id string, record any) error {
	if err := checkCollection(collection); err != nil {
		return fmt.Errorf("store.Put: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("store.Put: marshal %s record: %w", collection, err)
	}

	q := fmt.Sprintf(
		`INSERT INTO %s (id, data) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`, collection)
	if _, err := s.db.ExecContext(ctx, q, id, string(data)); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("store.Put: %s id %s: %w", collection, id, domain.ErrDuplicateKey)
		}
		return fmt.Errorf("store.Put: %s: %w", collection, err)
	}
	return nil
}

// Remove deletes the record under id. Idempotent; removing an absent id is
// not an error.
func (s *Store) Remove(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return fmt.Errorf("store.Remove: %w", err)
	}

	q := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, collection)
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("store.Remove: %s: %w", collection, err)
	}
	return nil
}

// GetByIndex loads every record whose indexed field equals value into dest,
// which must be a pointer to a slice of the record type. dest is set to an
// empty slice when nothing matches. Result order is unspecified.
func (s *Store) GetByIndex(ctx context.Context, collection, index, value string, dest any) error {
	if err := checkIndex(collection, index); err != nil {
		return fmt.Errorf("store.GetByIndex: %w", err)
	}

	q := fmt.Sprintf(`SELECT data FROM %s WHERE json_extract(data, '$.%s') = ?`, collection, index)

	rows, err := s.db.QueryContext(ctx, q, value)
	if err != nil {
		return fmt.Errorf("store.GetByIndex: %s.%s: %w", collection, index, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return fmt.Errorf("store.GetByIndex: scan %s record: %w", collection, err)
		}
		docs = append(docs, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store.GetByIndex: rows: %w", err)
	}

	// Decode all matches in one pass by assembling a JSON array. This keeps
	// the method free of reflection and generics; dest is *[]T for any T.
	joined, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("store.GetByIndex: assemble result: %w", err)
	}
	if err := json.Unmarshal(joined, dest); err != nil {
		return fmt.Errorf("store.GetByIndex: unmarshal %s records: %w", collection, err)
	}
	return nil
}

// All returns a lazy, finite, restartable sequence over every raw record in
// the collection, in unspecified order. Each range over the sequence runs a
// fresh query, so the sequence can be iterated multiple times.
//
// Errors surface as the second element of the pair; iteration stops after
// the first error.
func (s *Store) All(ctx context.Context, collection string) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		if err := checkCollection(collection); err != nil {
			yield(nil, fmt.Errorf("store.All: %w", err))
			return
		}

		q := fmt.Sprintf(`SELECT data FROM %s`, collection)
		rows, err := s.db.QueryContext(ctx, q)
		if err != nil {
			yield(nil, fmt.Errorf("store.All: %s: %w", collection, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var data []byte
			if err := rows.Scan(&data); err != nil {
				yield(nil, fmt.Errorf("store.All: scan %s record: %w", collection, err))
				return
			}
			if !yield(json.RawMessage(data), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("store.All: rows: %w", err))
		}
	}
}

// checkCollection rejects collection names that were never registered.
func checkCollection(collection string) error {
	if _, ok := collections[collection]; !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

// checkIndex rejects index names not declared for the collection.
func checkIndex(collection, index string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if !collections[collection][index] {
		return fmt.Errorf("unknown index %q on collection %q", index, collection)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure. modernc.org/sqlite reports these as
// "constraint failed: UNIQUE constraint failed: <table>.<column>".
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
