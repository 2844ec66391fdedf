package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/todo-tracker/internal/logger"
	"github.com/sbilibin2017/todo-tracker/internal/middlewares"
	"github.com/sbilibin2017/todo-tracker/internal/models"
	"github.com/sbilibin2017/todo-tracker/internal/services"
	"github.com/sbilibin2017/todo-tracker/internal/validation"
)

//go:generate mockgen -source=todo.go -destination=mock_todo.go -package=handlers

type TodoLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TodoDB, error)
}

type TodoCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*models.TodoDB, error)
}

type TodoUpdater interface {
	Update(ctx context.Context, userID, todoID uuid.UUID, title string, completed bool) (*models.TodoDB, error)
}

type TodoDeleter interface {
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
}

// CreateTodoRequest represents the JSON body for a new todo
// swagger:model CreateTodoRequest
type CreateTodoRequest struct {
	// required: true
	// default: Buy milk
	Title string `json:"title" validate:"required"`

	// Id of the authenticated user
	// required: true
	User string `json:"user" validate:"required,uuid"`
}

// UpdateTodoRequest represents the JSON body for a todo update
// swagger:model UpdateTodoRequest
type UpdateTodoRequest struct {
	// required: true
	// default: Buy milk
	Title string `json:"title" validate:"required"`

	// required: true
	Completed *bool `json:"completed" validate:"required"`
}

const (
	msgInvalidJSON  = "Invalid JSON body"
	msgTodoNotFound = "Todo not found"
	msgInternal     = "Internal Server Error"
)

func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "User ID not found in token"})
	}
	return userID, ok
}

// todoIDParam parses the {id} path segment. Ids that cannot exist are
// reported as not found.
func todoIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	todoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgTodoNotFound})
		return uuid.Nil, false
	}
	return todoID, true
}

// NewListTodosHandler returns an HTTP handler listing the caller's todos.
// @Summary List todos
// @Description Todos of the authenticated user, newest first
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TodoDB
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /todos [get]
func NewListTodosHandler(svc TodoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		todos, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("list todos failed", "user_id", userID, "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: msgInternal})
			return
		}
		writeJSON(w, http.StatusOK, todos)
	}
}

// NewCreateTodoHandler returns an HTTP handler creating a todo.
// @Summary Create todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createTodoRequest body handlers.CreateTodoRequest true "New todo"
// @Success 201 {object} models.TodoDB
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /todos [post]
func NewCreateTodoHandler(svc TodoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req CreateTodoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: msgInvalidJSON})
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		req.User = strings.TrimSpace(req.User)

		errs := validation.Validate(req)
		if errs == nil {
			if owner, _ := uuid.Parse(req.User); owner != userID {
				errs = []validation.FieldError{{Field: "user", Message: "must be the authenticated user"}}
			}
		}
		if errs != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		todo, err := svc.Create(r.Context(), userID, req.Title)
		if err != nil {
			logger.Log.Errorw("create todo failed", "user_id", userID, "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: msgInternal})
			return
		}
		writeJSON(w, http.StatusCreated, todo)
	}
}

// NewUpdateTodoHandler returns an HTTP handler updating a todo.
// @Summary Update todo
// @Description Sets title and completion. completedAt is stamped when a todo becomes completed and cleared when it is reopened.
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Param updateTodoRequest body handlers.UpdateTodoRequest true "Changes"
// @Success 200 {object} models.TodoDB
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.MessageResponse "Todo not found"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /todos/{id} [patch]
func NewUpdateTodoHandler(svc TodoUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		todoID, ok := todoIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateTodoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: msgInvalidJSON})
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		if errs := validation.Validate(req); errs != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
			return
		}

		todo, err := svc.Update(r.Context(), userID, todoID, req.Title, *req.Completed)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgTodoNotFound})
		case err != nil:
			logger.Log.Errorw("update todo failed", "user_id", userID, "todo_id", todoID, "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: msgInternal})
		default:
			writeJSON(w, http.StatusOK, todo)
		}
	}
}

// NewDeleteTodoHandler returns an HTTP handler deleting a todo.
// @Summary Delete todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Success 200 {object} handlers.MessageResponse "Todo deleted successfully"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.MessageResponse "Todo not found"
// @Failure 500 {object} handlers.MessageResponse "Internal Server Error"
// @Router /todos/{id} [delete]
func NewDeleteTodoHandler(svc TodoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r)
		if !ok {
			return
		}
		todoID, ok := todoIDParam(w, r)
		if !ok {
			return
		}

		err := svc.Delete(r.Context(), userID, todoID)
		switch {
		case errors.Is(err, services.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgTodoNotFound})
		case err != nil:
			logger.Log.Errorw("delete todo failed", "user_id", userID, "todo_id", todoID, "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: msgInternal})
		default:
			writeJSON(w, http.StatusOK, MessageResponse{Message: "Todo deleted successfully"})
		}
	}
}
