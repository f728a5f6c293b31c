package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate email", fmt.Errorf("sign up: %w", ErrDuplicateEmail), http.StatusConflict},
		{"duplicate username", ErrDuplicateUsername, http.StatusConflict},
		{"duplicate driver id", fmt.Errorf("register: %w", ErrDuplicateDriverID), http.StatusConflict},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation", fmt.Errorf("email is required: %w", ErrValidation), http.StatusBadRequest},
		{"provider", fmt.Errorf("%w: weak password", ErrProvider), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "email already registered", Message(fmt.Errorf("sign up: %w", ErrDuplicateEmail)))
	assert.Equal(t, "invalid credentials", Message(ErrInvalidCredentials))
	assert.Equal(t, "internal error", Message(fmt.Errorf("boom")))
}
