package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	owner_id TEXT NOT NULL REFERENCES users(id),
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS tasks_owner_id_idx ON tasks (owner_id);
`

// SQLite implements Store over the pure-Go modernc driver. It backs both
// file deployments and the in-memory stores the tests run against.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// A single connection keeps writes serialized and keeps an in-memory
	// database alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `INSERT INTO
			users(id, username, password_hash, created_at)
			VALUES(?, ?, ?, ?)
			RETURNING id, username, password_hash, created_at`,
		uuid.New(), username, passwordHash, time.Now().UTC().UnixNano())

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *SQLite) UserByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *SQLite) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, completed, owner_id, created_at
		FROM tasks
		WHERE owner_id = ?
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (s *SQLite) CreateTask(ctx context.Context, ownerID uuid.UUID, text string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `INSERT INTO
			tasks(id, text, completed, owner_id, created_at)
			VALUES(?, ?, 0, ?, ?)
			RETURNING id, text, completed, owner_id, created_at`,
		uuid.New(), text, ownerID, time.Now().UTC().UnixNano())

	task, err := scanTask(row)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *SQLite) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, upd TaskUpdate) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET text = COALESCE(NULLIF(?, ''), text),
		    completed = COALESCE(?, completed)
		WHERE id = ? AND owner_id = ?
		RETURNING id, text, completed, owner_id, created_at`,
		upd.Text, upd.Completed, taskID, ownerID)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *SQLite) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
