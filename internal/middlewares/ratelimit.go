package middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/todo-tracker/internal/logger"
)

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=middlewares

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimitMiddleware rejects clients that exceed limit requests per window,
// keyed by remote IP. A non-positive limit disables it. Limiter failures let
// the request through.
func RateLimitMiddleware(limiter RateLimiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			ok, err := limiter.Allow(r.Context(), ip, limit, window)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable", "ip", ip, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "message", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
