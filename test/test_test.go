package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/loadpalette/test"
)

func TestHelpers(t *testing.T) {
	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, []uint8{1, 2}, []uint8{1, 2})
	test.ExpectInequality(t, "foo", "bar")
	test.DemandEquality(t, true, true)

	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test error"))
}
