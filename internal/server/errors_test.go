package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themohitbharti/joblens/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "results", Message: "is required"}
	assert.Equal(t, "validation error: results - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrUnknownDomain(t *testing.T) {
	err := &ErrUnknownDomain{Domain: "letter"}
	assert.Equal(t, "unknown domain: letter", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "documents", Message: "failed 'min'"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped ErrValidation",
			err:      fmt.Errorf("decode: %w", &ErrValidation{Field: "body", Message: "bad"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "malformed result set",
			err:      fmt.Errorf("%w: not an object", types.ErrMalformedResultSet),
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrUnknownDomain",
			err:      &ErrUnknownDomain{Domain: "letter"},
			expected: http.StatusNotFound,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
