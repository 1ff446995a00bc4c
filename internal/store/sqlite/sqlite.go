// Package sqlite implements store.Store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cleared-dev/bursar/internal/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store keeps every collection in a single documents table.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	// SQLite serializes writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database %s: %w", path, err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := msqlite.WithInstance(db, &msqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

func (s *Store) GetAll(ctx context.Context, collection string) ([]store.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY seq`, collection)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", collection, err)
		}
		docs = append(docs, store.Document{ID: id, Data: json.RawMessage(data)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return docs, nil
}

func (s *Store) GetByID(ctx context.Context, collection, id string) (store.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Document{}, store.NotFound(collection, id)
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("querying %s/%s: %w", collection, id, err)
	}
	return store.Document{ID: id, Data: json.RawMessage(data)}, nil
}

func (s *Store) Create(ctx context.Context, collection string, data json.RawMessage) (store.Document, error) {
	id := uuid.NewString()
	stored, err := store.WithID(data, id)
	if err != nil {
		return store.Document{}, err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)`,
		collection, id, string(stored)); err != nil {
		return store.Document{}, fmt.Errorf("inserting into %s: %w", collection, err)
	}
	return store.Document{ID: id, Data: stored}, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, patch json.RawMessage) (store.Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.Document{}, fmt.Errorf("beginning update: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var data string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Document{}, store.NotFound(collection, id)
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("querying %s/%s: %w", collection, id, err)
	}

	merged, err := store.Merge(json.RawMessage(data), patch)
	if err != nil {
		return store.Document{}, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET data = ? WHERE collection = ? AND id = ?`,
		string(merged), collection, id); err != nil {
		return store.Document{}, fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	if err := tx.Commit(); err != nil {
		return store.Document{}, fmt.Errorf("committing update: %w", err)
	}
	return store.Document{ID: id, Data: merged}, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	if n == 0 {
		return store.NotFound(collection, id)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
