package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/keydrill/internal/errors"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := fmt.Errorf("complete session: %w", errors.NewStorageError("modify", cause))

	assert.True(t, stderrors.Is(err, errors.ErrStorageUnavailable))
	assert.False(t, stderrors.Is(err, errors.ErrNotFound))
	assert.True(t, stderrors.Is(err, cause), "underlying cause stays reachable")
}

func TestAs(t *testing.T) {
	appErr, ok := errors.As(fmt.Errorf("wrapped: %w", errors.NewNotFoundError("review item", "x")))
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "NOT_FOUND: review item not found: x", appErr.Error())

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}
