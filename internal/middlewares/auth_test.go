package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.MustParse("6f1c3c1e-8f9b-4a55-9d3a-2b8e2f0b7c11")

	tests := []struct {
		name             string
		header           string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectedBody     map[string]string
		expectNextCalled bool
	}{
		{
			name:   "NoToken",
			header: "",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().TokenFromHeader("").Return("", jwt.ErrMalformed)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   map[string]string{"error": "Authorization token missing or malformed"},
		},
		{
			name:   "InvalidToken",
			header: "Bearer sometoken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().TokenFromHeader("Bearer sometoken").Return("sometoken", nil)
				m.EXPECT().Verify(gomock.Any(), "sometoken").
					Return(uuid.Nil, errors.Join(jwt.ErrInvalidOrExpired, errors.New("signature is invalid")))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   map[string]string{"error": "Invalid token"},
		},
		{
			name:   "MissingSubject",
			header: "Bearer nosub",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().TokenFromHeader("Bearer nosub").Return("nosub", nil)
				m.EXPECT().Verify(gomock.Any(), "nosub").Return(uuid.Nil, jwt.ErrMissingSubject)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "User ID not found in token"},
		},
		{
			name:   "ValidToken",
			header: "Bearer validtoken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().TokenFromHeader("Bearer validtoken").Return("validtoken", nil)
				m.EXPECT().Verify(gomock.Any(), "validtoken").Return(userID, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != nil {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestAuthMiddleware_RealTokens(t *testing.T) {
	tokens := jwt.New(jwt.WithSecretKey("secret"))
	userID := uuid.New()
	token, err := tokens.Generate(t.Context(), userID)
	require.NoError(t, err)

	var got uuid.UUID
	handler := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, got)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, ok := UserIDFromContext(t.Context())
	assert.False(t, ok)
}
