package server

import (
	"errors"
	"net/http"

	"github.com/Choovyy/portfolio/internal/portfolio"
	"github.com/Choovyy/portfolio/internal/session"
)

// HTTPStatus returns the HTTP status code for a domain error.
func HTTPStatus(err error) int {
	var missing *session.MissingFieldError
	var notFound *portfolio.ProjectNotFoundError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
