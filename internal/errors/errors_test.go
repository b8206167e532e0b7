package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound("customer not found")
	assert.Equal(t, "customer not found", plain.Error())

	wrapped := Wrap(errors.New("no rows"), ErrCodeNotFound, "customer not found")
	assert.Equal(t, "customer not found: no rows", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "something failed")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilCause(t *testing.T) {
	require.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
		want  bool
	}{
		{NotFound("x"), IsNotFound, true},
		{Conflict("x"), IsConflict, true},
		{Validation("x"), IsValidation, true},
		{Unauthorized("x"), IsUnauthorized, true},
		{Forbidden("x"), IsForbidden, true},
		{Conflict("x"), IsNotFound, false},
		{errors.New("plain"), IsNotFound, false},
		{nil, IsNotFound, false},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.want, tt.check(tt.err), "case %d", i)
	}
}

func TestCodePredicates_WrappedInChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFoundf("equipment %s not found", "abc"))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, ErrCodeNotFound, GetCode(err))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
}
