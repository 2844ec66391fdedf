package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,bcrypt"`
	Owner    string `json:"user,omitempty" validate:"omitempty,uuid"`
}

func TestValidate(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	longPassword := strings.Repeat("p", MaxPasswordBytes+1)
	// 24 runes, 72 bytes
	multibyte := strings.Repeat("密", MaxPasswordBytes/3)

	tests := []struct {
		name string
		in   signup
		want []FieldError
	}{
		{
			name: "valid",
			in:   signup{Name: "Ann", Email: "ann@example.com", Password: "secret"},
			want: nil,
		},
		{
			name: "missing email and short password",
			in:   signup{Password: "123"},
			want: []FieldError{
				{Field: "email", Message: "is required"},
				{Field: "password", Message: "must be at least 6 characters"},
			},
		},
		{
			name: "bad email, long name, bad owner",
			in:   signup{Name: string(long), Email: "nope", Password: "secret", Owner: "xyz"},
			want: []FieldError{
				{Field: "name", Message: "must be at most 100 characters"},
				{Field: "email", Message: "must be a valid email address"},
				{Field: "user", Message: "must be a valid id"},
			},
		},
		{
			name: "password over bcrypt limit",
			in:   signup{Email: "ann@example.com", Password: longPassword},
			want: []FieldError{
				{Field: "password", Message: "must be at most 72 bytes"},
			},
		},
		{
			name: "multibyte password at the limit",
			in:   signup{Email: "ann@example.com", Password: multibyte},
			want: nil,
		},
		{
			name: "multibyte password over the limit",
			in:   signup{Email: "ann@example.com", Password: multibyte + "é"},
			want: []FieldError{
				{Field: "password", Message: "must be at most 72 bytes"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.in))
		})
	}
}
