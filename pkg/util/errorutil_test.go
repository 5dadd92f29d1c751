package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	err := NewConflict("email already registered", map[string]any{"email": "a@b.c"})

	de := ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "CONFLICT", de.Code)
	assert.Equal(t, http.StatusConflict, de.HTTPStatus)
}

func TestToDomainErrorMapsDriverNotFound(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, mongo.ErrNoDocuments} {
		de := ToDomainError(err)
		require.NotNil(t, de)
		assert.Equal(t, "NOT_FOUND", de.Code)
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
