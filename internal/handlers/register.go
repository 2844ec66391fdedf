package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/services"
	"github.com/sbilibin2017/todo-tracker/internal/validation"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required,max=100"`

	// Email, stored lowercased
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,bcrypt"`
}

func (req *RegisterRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = services.NormalizeEmail(req.Email)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Emails are unique; the password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.MessageResponse "User registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 400 {object} handlers.MessageResponse "Email already exists / invalid JSON"
// @Failure 429 {object} handlers.MessageResponse "Too many requests"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Invalid or empty JSON body"})
			return
		}

		req.normalize()
		if errs := validation.Validate(req); errs != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Email already exists"})
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
		default:
			writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered"})
		}
	}
}
