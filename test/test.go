package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExpectEquality fails the test if value is not equal to expectedValue.
func ExpectEquality[T any](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	return assert.Equal(t, expectedValue, value)
}

// ExpectInequality fails the test if value is equal to notExpectedValue.
func ExpectInequality[T any](t *testing.T, value T, notExpectedValue T) bool {
	t.Helper()
	return assert.NotEqual(t, notExpectedValue, value)
}

// DemandEquality is the same as ExpectEquality but stops the test on failure.
func DemandEquality[T any](t *testing.T, value T, expectedValue T) {
	t.Helper()
	require.Equal(t, expectedValue, value)
}

// ExpectSuccess fails the test if v is false or a non-nil error.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return assert.True(t, v)
	case error:
		return assert.NoError(t, v)
	}
	t.Fatalf("unsupported type (%T) for success test", v)
	return false
}

// ExpectFailure fails the test if v is true or a nil error.
//
// Note that an untyped nil is treated as a nil error.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case nil:
		return assert.Fail(t, "expected an error")
	case bool:
		return assert.False(t, v)
	case error:
		return assert.Error(t, v)
	}
	t.Fatalf("unsupported type (%T) for failure test", v)
	return false
}

// DemandSuccess is the same as ExpectSuccess but stops the test on failure.
func DemandSuccess(t *testing.T, v any) {
	t.Helper()
	if !ExpectSuccess(t, v) {
		t.FailNow()
	}
}
