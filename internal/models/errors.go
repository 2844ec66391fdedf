package models

import "errors"

var (
	// ErrEmailTaken is returned by storage when the email unique constraint is violated.
	ErrEmailTaken = errors.New("email already exists")
	// ErrTodoNotFound is returned when no todo with the given id belongs to the user.
	ErrTodoNotFound = errors.New("todo not found")
)
