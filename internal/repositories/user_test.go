package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, "Alice", "alice@example.com", "hash123")
	require.NoError(t, err)

	var user models.UserDB
	err = db.Get(&user, "SELECT user_id, name, email, password_hash, created_at FROM users WHERE email=$1", "alice@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := repo.Save(ctx, "Other", "alice@example.com", "hash456")
		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "Charlie", "charlie@example.com", "secret"))
	require.NoError(t, writeRepo.Save(ctx, "Dave", "dave@example.com", "secret2"))

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "dave@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Dave", user.Name)
		assert.Equal(t, "secret2", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
