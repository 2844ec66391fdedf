package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitRepository_Allow(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewRateLimitRepository(rdb)
	now := time.Date(2024, 1, 20, 10, 0, 5, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := repo.Allow(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := repo.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// other clients have their own counter
	ok, err = repo.Allow(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// a new window starts from zero
	now = now.Add(time.Minute)
	ok, err = repo.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	keys, err := rdb.Keys(ctx, "ratelimit:10.0.0.1:*").Result()
	require.NoError(t, err)
	for _, k := range keys {
		ttl, err := rdb.TTL(ctx, k).Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, ttl, time.Minute)
		assert.Greater(t, ttl, time.Duration(0))
	}
}
