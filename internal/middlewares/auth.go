package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/jwt"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener extracts and verifies bearer tokens.
type Tokener interface {
	TokenFromHeader(header string) (string, error)
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}

// AuthMiddleware verifies the bearer token and puts the caller's id into the
// request context. Nothing downstream runs when verification fails.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "error", "Authorization token missing or malformed")
				return
			}

			userID, err := tokener.Verify(ctx, token)
			switch {
			case errors.Is(err, jwt.ErrMissingSubject):
				logger.Log.Debugw("authorization failed", "err", err)
				writeError(w, http.StatusBadRequest, "error", "User ID not found in token")
				return
			case err != nil:
				logger.Log.Debugw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "error", "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}
