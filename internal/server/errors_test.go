package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Choovyy/portfolio/internal/portfolio"
	"github.com/Choovyy/portfolio/internal/session"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "missing field", err: &session.MissingFieldError{Fields: []string{"email"}}, expected: http.StatusUnprocessableEntity},
		{name: "wrapped missing field", err: fmt.Errorf("submit: %w", &session.MissingFieldError{}), expected: http.StatusUnprocessableEntity},
		{name: "project not found", err: &portfolio.ProjectNotFoundError{Index: 9}, expected: http.StatusNotFound},
		{name: "unknown", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
