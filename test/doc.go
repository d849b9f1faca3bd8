// Package test contains helper functions for writing package tests.
//
// The Expect*() functions report a failed test and allow the test to continue.
// The Demand*() functions stop the test immediately. Use Demand*() when the
// rest of the test would be meaningless if the condition did not hold.
//
// ExpectSuccess() and ExpectFailure() accept either a bool or an error. A true
// value or a nil error is a success.
package test
