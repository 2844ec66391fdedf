package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/todo-tracker/internal/models"
)

const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, []any{email}, "not found", nil)
		return nil, nil
	}
	logQuery(query, []any{email}, user.UserID, err)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db, now: time.Now}
}

// Save inserts a new user. A duplicate email yields models.ErrEmailTaken.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	userID := uuid.New()

	_, err := r.db.ExecContext(ctx, query, userID, name, email, passwordHash, r.now().UTC())
	logQuery(query, []any{userID, name, email}, userID, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return models.ErrEmailTaken
	}
	return err
}
