package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/todo-tracker/internal/validation"
)

var errEmptyBody = errors.New("empty body")

// MessageResponse carries a human readable outcome.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: User registered
	Message string `json:"message"`
}

// ErrorResponse is returned by authentication and statistics failures.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// default: Invalid range parameter
	Error string `json:"error"`
}

// ValidationErrorResponse lists every rejected field.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}
