package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsAppErrorUnwraps(t *testing.T) {
	appErr := NewConflictError("task", "in flight")
	wrapped := fmt.Errorf("claim: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Same(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("save", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCodeStorage, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPredicates(t *testing.T) {
	assert.True(t, NewValidationError("full_name", "empty").IsValidation())
	assert.True(t, NewUnauthorizedError("no init data").IsUnauthorized())
	assert.True(t, New(ErrCodeInternal, "boom").IsInternal())
	assert.False(t, New(ErrCodeTaskInFlight, "busy").IsInternal())
}
