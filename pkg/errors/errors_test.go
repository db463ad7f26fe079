package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/agentstation/addrename/pkg/errors"
)

func TestValidationError(t *testing.T) {
	t.Run("with line", func(t *testing.T) {
		err := pkgerrors.NewLineError(3, "a,b,c", "expected 2 fields, got 3")
		assert.Equal(t, `validation failed on line 3 ("a,b,c"): expected 2 fields, got 3`, err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("workers", "must be positive")
		assert.Equal(t, "validation failed for field workers: must be positive", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("load list: %w", pkgerrors.NewLineError(1, "x", "bad"))
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.False(t, pkgerrors.IsConnection(err))
	})
}

func TestAuthenticationError(t *testing.T) {
	base := errors.New("Invalid Credentials.")
	err := &pkgerrors.AuthenticationError{Host: "fw1", Message: "keygen rejected", Err: base}
	assert.Contains(t, err.Error(), "fw1")
	assert.True(t, pkgerrors.IsAuthentication(err))
	assert.ErrorIs(t, err, base)
}

func TestConnectionError(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	err := pkgerrors.WrapConnection("10.0.0.1", base)
	assert.True(t, pkgerrors.IsConnection(err))
	assert.ErrorIs(t, err, base)
	assert.Nil(t, pkgerrors.WrapConnection("10.0.0.1", nil))
}

func TestAPIError(t *testing.T) {
	t.Run("status only", func(t *testing.T) {
		err := &pkgerrors.APIError{Action: "rename", StatusCode: 200, Message: "Object doesn't exist"}
		assert.Equal(t, "API error during rename: Object doesn't exist", err.Error())
		assert.ErrorIs(t, err, pkgerrors.ErrAPI)
		assert.False(t, pkgerrors.IsAuthentication(err))
	})

	t.Run("forbidden means bad key", func(t *testing.T) {
		err := &pkgerrors.APIError{Action: "get", StatusCode: 403, Code: "403", Message: "Invalid credentials."}
		assert.True(t, pkgerrors.IsAuthentication(err))
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("code", func(t *testing.T) {
		err := &pkgerrors.APIError{Action: "op", Code: "17"}
		assert.Equal(t, "API error during op (code 17): request rejected", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
	assert.Nil(t, pkgerrors.WrapParse("csv", "x", nil))

	ioErr := pkgerrors.WrapIO("open", "list.csv", errors.New("no such file"))
	assert.Equal(t, "IO error during open of list.csv: no such file", ioErr.Error())

	parseErr := pkgerrors.WrapParse("xml", "", errors.New("EOF"))
	assert.Equal(t, "xml parse error: EOF", parseErr.Error())

	cfgErr := pkgerrors.NewConfigError("match_by", "unknown mode", nil)
	assert.Equal(t, "configuration error in match_by: unknown mode", cfgErr.Error())
}
