// Package server provides the HTTP REST API for scoring and comparing documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/themohitbharti/joblens/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownDomain indicates the path names a domain without a catalog
type ErrUnknownDomain struct {
	Domain string
}

func (e *ErrUnknownDomain) Error() string {
	return fmt.Sprintf("unknown domain: %s", e.Domain)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var domainErr *ErrUnknownDomain
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr), errors.Is(err, types.ErrMalformedResultSet):
		return http.StatusBadRequest
	case errors.As(err, &domainErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
