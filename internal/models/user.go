package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name, at most 100 characters
	Email        string    `json:"email" db:"email"`           // Unique, trimmed and lowercase
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
