package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/todo-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"  John  ","email":" John@Example.com ","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John", "john@example.com", "secret").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"User registered"}`,
		},
		{
			name: "email already exists",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "secret").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Email already exists"}`,
		},
		{
			name: "internal server error",
			body: `{"name":"Bob","email":"bob@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Bob", "bob@example.com", "secret").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal Server Error"}`,
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid or empty JSON body"}`,
		},
		{
			name:         "empty body",
			body:         "",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid or empty JSON body"}`,
		},
		{
			name:         "password too long",
			body:         `{"name":"Bob","email":"bob@example.com","password":"` + strings.Repeat("x", 73) + `"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":[{"field":"password","message":"must be at most 72 bytes"}]}`,
		},
		{
			name:         "validation errors",
			body:         `{"name":"","email":"not-an-email","password":"123"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":[
				{"field":"name","message":"is required"},
				{"field":"email","message":"must be a valid email address"},
				{"field":"password","message":"must be at least 6 characters"}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

// Overlong passwords must be rejected before bcrypt sees them.
func TestRegisterHandler_LongPasswordWithAuthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no store or token calls are expected
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
	)

	body, _ := json.Marshal(RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: strings.Repeat("x", 73)})
	rr := httptest.NewRecorder()
	NewRegisterHandler(svc)(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":[{"field":"password","message":"must be at most 72 bytes"}]}`, rr.Body.String())
}

func TestRegisterHandler_NameTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	long := bytes.Repeat([]byte("a"), 101)
	body, _ := json.Marshal(RegisterRequest{Name: string(long), Email: "a@example.com", Password: "secret"})

	rr := httptest.NewRecorder()
	NewRegisterHandler(NewMockRegisterer(ctrl))(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body)))

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "name", resp.Errors[0].Field)
	assert.Equal(t, "must be at most 100 characters", resp.Errors[0].Message)
}
