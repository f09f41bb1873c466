package errors

import (
	"testing"

	"prwatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostcodeNotFoundError_FiveCharHint(t *testing.T) {
	err := NewPostcodeNotFoundError("AB12CD", "gb")
	assert.Equal(t, "POSTCODE_NOT_FOUND", err.ErrorCode())
	// Six characters: no respacing hint.
	assert.NotContains(t, err.Details(), "did you mean")

	err = NewPostcodeNotFoundError("AB12C", "gb")
	// Five characters: suggest the conventional spacing.
	assert.Contains(t, err.Details(), `"AB 12C"`)
}

func TestBaseError_WrapMessageKeepsCode(t *testing.T) {
	wrapped := ErrActivationFailed.WrapMessage("extra operator context")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrActivationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, ErrActivationFailed.HTTPCode(), appErr.HTTPCode())
}
