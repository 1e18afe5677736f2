package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id UUID PRIMARY KEY,
	text TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	owner_id UUID NOT NULL REFERENCES users(id),
	created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS tasks_owner_id_idx ON tasks (owner_id);
`

// Postgres implements Store over lib/pq.
type Postgres struct {
	db *sql.DB
}

func OpenPostgres(url string) (*Postgres, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if _, err := db.Exec(pgSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	row := p.db.QueryRowContext(ctx, `INSERT INTO
			users(id, username, password_hash, created_at)
			VALUES($1, $2, $3, $4)
			RETURNING id, username, password_hash, created_at`,
		uuid.New(), username, passwordHash, time.Now().UTC().UnixNano())

	user, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (p *Postgres) UserByUsername(ctx context.Context, username string) (models.User, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (p *Postgres) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, text, completed, owner_id, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (p *Postgres) CreateTask(ctx context.Context, ownerID uuid.UUID, text string) (models.Task, error) {
	row := p.db.QueryRowContext(ctx, `INSERT INTO
			tasks(id, text, completed, owner_id, created_at)
			VALUES($1, $2, FALSE, $3, $4)
			RETURNING id, text, completed, owner_id, created_at`,
		uuid.New(), text, ownerID, time.Now().UTC().UnixNano())

	task, err := scanTask(row)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (p *Postgres) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, upd TaskUpdate) (models.Task, error) {
	row := p.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET text = COALESCE(NULLIF($1, ''), text),
		    completed = COALESCE($2, completed)
		WHERE id = $3 AND owner_id = $4
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

func (p *Postgres) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	result, err := p.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, taskID, ownerID)
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
