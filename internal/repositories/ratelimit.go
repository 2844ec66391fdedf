package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
)

// RateLimitRepository counts hits per key in fixed time windows stored in Redis.
type RateLimitRepository struct {
	rdb redis.Cmdable
	now func() time.Time
}

func NewRateLimitRepository(rdb redis.Cmdable) *RateLimitRepository {
	return &RateLimitRepository{rdb: rdb, now: time.Now}
}

// Allow records a hit for key and reports whether the number of hits in the
// current window is still within limit.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	slot := r.now().UnixNano() / int64(window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, slot)

	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw("rate limit hit", "key", redisKey, "count", incr.Val(), "limit", limit, "error", err)
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}
