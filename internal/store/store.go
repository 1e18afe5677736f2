// Package store persists users and their tasks. Every task operation is
// scoped by owner inside a single statement, so an ownership check can never
// race the mutation it guards.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrNotFound covers both a missing row and a row owned by someone
	// else; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
)

// TaskUpdate carries the mutable task attributes. An empty Text or a nil
// Completed leaves that column unchanged.
type TaskUpdate struct {
	Text      string
	Completed *bool
}

type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)

	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	CreateTask(ctx context.Context, ownerID uuid.UUID, text string) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, upd TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error

	Close() error
}

// Open picks a backend from the DSN: a postgres:// URL opens the Postgres
// store, anything else is treated as a SQLite database path.
func Open(databaseURL string) (Store, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return OpenPostgres(databaseURL)
	}
	return OpenSQLite(databaseURL)
}
