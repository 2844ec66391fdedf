package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/todo-tracker/internal/models"
)

const todoColumns = `todo_id, user_id, title, completed, completed_at, created_at, updated_at`

// TodoReadRepository handles todo read operations, including the completion
// queries behind statistics.
type TodoReadRepository struct {
	db *sqlx.DB
}

func NewTodoReadRepository(db *sqlx.DB) *TodoReadRepository {
	return &TodoReadRepository{db: db}
}

// ListByUser returns the user's todos, newest first.
func (r *TodoReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	todos := []models.TodoDB{}
	err := r.db.SelectContext(ctx, &todos, query, userID)
	logQuery(query, []any{userID}, len(todos), err)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// FindCompletedSince returns completion instants of the user's completed todos
// at or after start, oldest first.
func (r *TodoReadRepository) FindCompletedSince(ctx context.Context, userID uuid.UUID, start time.Time) ([]time.Time, error) {
	const query = `
		SELECT completed_at
		FROM todos
		WHERE user_id = $1 AND completed AND completed_at >= $2
		ORDER BY completed_at
	`

	var completedAt []time.Time
	err := r.db.SelectContext(ctx, &completedAt, query, userID, start)
	logQuery(query, []any{userID, start}, len(completedAt), err)
	if err != nil {
		return nil, err
	}
	return completedAt, nil
}

// CountCompletedSince counts the user's todos completed at or after start.
func (r *TodoReadRepository) CountCompletedSince(ctx context.Context, userID uuid.UUID, start time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM todos
		WHERE user_id = $1 AND completed AND completed_at >= $2
	`

	var n int64
	err := r.db.GetContext(ctx, &n, query, userID, start)
	logQuery(query, []any{userID, start}, n, err)
	return n, err
}

// TodoWriteRepository handles todo write operations.
type TodoWriteRepository struct {
	db *sqlx.DB
}

func NewTodoWriteRepository(db *sqlx.DB) *TodoWriteRepository {
	return &TodoWriteRepository{db: db}
}

// Create inserts an uncompleted todo.
func (r *TodoWriteRepository) Create(ctx context.Context, userID uuid.UUID, title string, at time.Time) (*models.TodoDB, error) {
	query := `
		INSERT INTO todos (todo_id, user_id, title, completed, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NULL, $4, $4)
		RETURNING ` + todoColumns

	var todo models.TodoDB
	args := []any{uuid.New(), userID, title, at}
	err := r.db.GetContext(ctx, &todo, query, args...)
	logQuery(query, args, todo.TodoID, err)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update sets title and completion in one statement. completed_at keeps its
// value while the todo stays completed, takes at on completion, and is
// cleared when the todo is reopened.
func (r *TodoWriteRepository) Update(ctx context.Context, userID, todoID uuid.UUID, title string, completed bool, at time.Time) (*models.TodoDB, error) {
	query := `
		UPDATE todos
		SET title = $3,
		    completed = $4,
		    completed_at = CASE WHEN $4 THEN COALESCE(completed_at, $5) ELSE NULL END,
		    updated_at = $5
		WHERE todo_id = $1 AND user_id = $2
		RETURNING ` + todoColumns

	var todo models.TodoDB
	args := []any{todoID, userID, title, completed, at}
	err := r.db.GetContext(ctx, &todo, query, args...)
	logQuery(query, args, todo.TodoID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Delete removes the user's todo.
func (r *TodoWriteRepository) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	const query = `DELETE FROM todos WHERE todo_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, todoID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{todoID, userID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrTodoNotFound
	}
	return nil
}
