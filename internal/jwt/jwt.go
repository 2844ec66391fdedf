package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration is the lifetime of an issued token unless overridden.
const DefaultExpiration = 7 * 24 * time.Hour

var (
	// ErrMalformed means the Authorization header is absent or not "Bearer <token>".
	ErrMalformed = errors.New("authorization token missing or malformed")
	// ErrInvalidOrExpired means the signature did not verify or the token has expired.
	ErrInvalidOrExpired = errors.New("invalid or expired token")
	// ErrMissingSubject means the token verified but carries no usable user id.
	ErrMissingSubject = errors.New("user id not found in token")
)

// Claims is the token payload. Generate writes the user id to "id". Verify
// also accepts "user", which takes precedence when both are present.
type Claims struct {
	UserID string `json:"id,omitempty"`
	User   string `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 identity tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(key)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(d time.Duration) Opt {
	return func(j *JWT) {
		j.exp = d
	}
}

// WithClock overrides the time source used for iat/exp and for validation.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT service.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for userID that expires after the configured lifetime.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Verify checks the signature and expiry of tokenString and returns the user id it carries.
func (j *JWT) Verify(ctx context.Context, tokenString string) (uuid.UUID, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidOrExpired, err)
	}

	subject := claims.User
	if subject == "" {
		subject = claims.UserID
	}
	if subject == "" {
		return uuid.Nil, ErrMissingSubject
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrMissingSubject, err)
	}
	return userID, nil
}

// TokenFromHeader extracts the token from an Authorization header value.
func (j *JWT) TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformed
	}
	return parts[1], nil
}
