// Package httpapi serves the charter engine as a JSON REST API using gin.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/custodia-labs/charta/internal/core/domain"
)

// ErrMissingCharterService is returned when the charter service is not provided.
var ErrMissingCharterService = errors.New("httpapi: charter service is required")

// ErrMissingCatalogService is returned when the catalog is not provided.
var ErrMissingCatalogService = errors.New("httpapi: catalog service is required")

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, domain.ErrEstimatorUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
