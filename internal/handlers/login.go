package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/services"
	"github.com/sbilibin2017/todo-tracker/internal/validation"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// default: Login successful
	Message string `json:"message"`

	// Signed bearer token
	// default: JWT_TOKEN
	AccessToken string `json:"accessToken"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Token returned"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 401 {object} handlers.MessageResponse "Invalid email or password"
// @Failure 429 {object} handlers.MessageResponse "Too many requests"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid or empty JSON body"})
			return
		}

		req.Email = services.NormalizeEmail(req.Email)
		if errs := validation.Validate(req); errs != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Invalid email or password"})
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
		default:
			writeJSON(w, http.StatusOK, LoginResponse{Message: "Login successful", AccessToken: token})
		}
	}
}
