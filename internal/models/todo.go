package models

import (
	"time"

	"github.com/google/uuid"
)

// TodoDB represents a todo record in the database.
// Completed is true exactly when CompletedAt is set.
type TodoDB struct {
	TodoID      uuid.UUID  `json:"id" db:"todo_id"`
	UserID      uuid.UUID  `json:"user" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completedAt" db:"completed_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Todo event types published to Kafka.
const (
	TodoCreated   = "created"
	TodoUpdated   = "updated"
	TodoCompleted = "completed"
	TodoDeleted   = "deleted"
)

// TodoEvent describes a change to a todo.
type TodoEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Todo* event types
	TodoID    string `json:"todo_id"`   // Affected todo
	UserID    string `json:"user_id"`   // Owner of the todo
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
