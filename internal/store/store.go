// Package store owns all durable state of the portal: the user, company and
// experience collections. Collections live in memory for the lifetime of the
// process and are snapshotted whole into a SQLite key-value table on every
// mutation, the way the original deployment snapshotted them into browser
// storage. A missing snapshot key means "use the built-in seed data".
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/jonathan/placement-portal/internal/types"
)

// Snapshot keys. Each names one collection serialized as a single JSON array.
const (
	keyUsers       = "users"
	keyCompanies   = "companies"
	keyExperiences = "experiences"
)

// Store holds the three collections and their backing database. All access
// goes through its methods; each mutating method performs its in-memory
// change and the full-collection snapshot write as one step under the lock.
type Store struct {
	mu sync.Mutex
	db *sql.DB

	users       []types.User
	companies   []types.Company
	experiences []types.Experience
}

// Open opens (creating if needed) the snapshot database at path and loads
// every collection, falling back to seed data for collections that have never
// been persisted. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	// The store is single-writer; one connection avoids SQLITE_BUSY and keeps
	// ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			name    TEXT PRIMARY KEY,
			payload TEXT NOT NULL
		)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	s := &Store{db: db}
	if err := s.load(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the backing database. In-memory state becomes unreachable.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes every collection's snapshot, including seed data that has only
// ever lived in memory. Open alone never writes; the seed command calls this
// to materialize a fresh store file.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, keyUsers, s.users); err != nil {
		return err
	}
	if err := s.persist(ctx, keyCompanies, s.companies); err != nil {
		return err
	}
	return s.persist(ctx, keyExperiences, s.experiences)
}

// load restores every collection from its snapshot, seeding absent ones.
func (s *Store) load(ctx context.Context) error {
	if err := loadCollection(ctx, s.db, keyUsers, &s.users, SeedUsers); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.db, keyCompanies, &s.companies, SeedCompanies); err != nil {
		return err
	}
	return loadCollection(ctx, s.db, keyExperiences, &s.experiences, SeedExperiences)
}

// loadCollection reads one snapshot into dst, or fills dst from seed when the
// key has never been written.
func loadCollection[T any](ctx context.Context, db *sql.DB, key string, dst *[]T, seed func() []T) error {
	var payload string
	err := db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE name = ?`, key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		*dst = seed()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s snapshot: %w", key, err)
	}

	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("failed to decode %s snapshot: %w", key, err)
	}
	return nil
}

// persist writes one collection's snapshot. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, key string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (name, payload) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", key, err)
	}
	return nil
}
