package store

import (
	"database/sql"
	"time"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Timestamps are stored as integer nanoseconds so both backends order and
// round-trip them identically.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		createdAt int64
	)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt); err != nil {
		return models.User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task      models.Task
		createdAt int64
	)
	if err := row.Scan(&task.ID, &task.Text, &task.Completed, &task.OwnerID, &createdAt); err != nil {
		return models.Task{}, err
	}
	task.CreatedAt = time.Unix(0, createdAt).UTC()
	return task, nil
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}
