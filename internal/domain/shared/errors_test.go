package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("matches sentinel by code", func(t *testing.T) {
		err := NewDomainError("NOT_FOUND", "pokemon 25 not found")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", ErrAlreadyExists)
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})
}

func TestDomainError_Wrap(t *testing.T) {
	cause := errors.New("disk full")

	t.Run("keeps code and extends message", func(t *testing.T) {
		err := ErrInternal.Wrap(cause)

		assert.Equal(t, "INTERNAL_ERROR", err.Code)
		assert.Equal(t, "Internal error: disk full", err.Error())
		assert.True(t, errors.Is(err, ErrInternal))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("nil cause returns the sentinel", func(t *testing.T) {
		assert.Same(t, ErrBadRequest, ErrBadRequest.Wrap(nil))
	})

	t.Run("errors.As finds the outermost domain error", func(t *testing.T) {
		inner := NewDomainError("INVALID_NAME", "name must not be empty")
		err := ErrBadRequest.Wrap(inner)

		var domainErr *DomainError
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
		assert.True(t, errors.Is(err, inner))
	})
}
