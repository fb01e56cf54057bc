package apperrors_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to insert asset", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to insert asset: connection reset", err.Error())
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := apperrors.NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("fixed asset abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "fixed asset abc")
}
