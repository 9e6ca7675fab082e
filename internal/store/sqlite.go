// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, immediate
//     transactions so concurrent appends serialize).
//   - Applying embedded migrations through golang-migrate.
//   - Check-and-insert of attempts inside one transaction.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	querySession  = `SELECT COUNT(1), COALESCE(MAX(CASE WHEN won = 1 THEN attempt END), 0) FROM attempts WHERE session_id = ?`
	insertAttempt = `INSERT INTO attempts (session_id, attempt, word, won, created_at) VALUES (?, ?, ?, ?, ?)`
)

// SQLite is a Store backed by a database/sql handle.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (and creates if missing) the database file at path and
// runs pending migrations.
func OpenSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info().Str("path", path).Msg("attempt ledger ready")
	return NewSQLite(db), nil
}

// NewSQLite wraps an already-migrated database.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *SQLite) Append(ctx context.Context, id string, a Attempt, limit int) (Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Session{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cur, err := scanSession(tx.QueryRowContext(ctx, querySession, id), id)
	if err != nil {
		return Session{}, err
	}
	if cur.Won || cur.Used >= limit {
		return cur, fmt.Errorf("%w: %s", ErrSessionOver, id)
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	next := cur.Used + 1
	if _, err := tx.ExecContext(ctx, insertAttempt,
		id, next, a.Word, a.Won, a.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return Session{}, fmt.Errorf("insert attempt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Session{}, fmt.Errorf("commit: %w", err)
	}
	return Session{ID: id, Used: next, Won: a.Won}, nil
}

func (s *SQLite) Get(ctx context.Context, id string) (Session, error) {
	sess, err := scanSession(s.db.QueryRowContext(ctx, querySession, id), id)
	if err != nil {
		return Session{}, err
	}
	if sess.Used == 0 {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error { return s.db.Close() }

func scanSession(row *sql.Row, id string) (Session, error) {
	var used, wonAt int
	if err := row.Scan(&used, &wonAt); err != nil {
		return Session{}, fmt.Errorf("query session: %w", err)
	}
	return Session{ID: id, Used: used, Won: wonAt > 0}, nil
}
