package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"-"`
}

type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest distinguishes absent fields from zero values; an absent
// field leaves the stored attribute unchanged.
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status,omitempty"`
}
