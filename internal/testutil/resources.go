package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks verifies that no goroutines are leaked during test execution.
// Call it deferred in tests that start processes or open databases.
//
//	func TestReloadRoundTrip(t *testing.T) {
//	    defer VerifyNoLeaks(t)
//	    // Test code
//	}
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, defaultOptions()...)
}

// VerifyNoLeaksWithOptions adds options such as extra ignored functions.
func VerifyNoLeaksWithOptions(t *testing.T, options ...goleak.Option) {
	t.Helper()
	allOptions := append(defaultOptions(), options...)
	goleak.VerifyNone(t, allOptions...)
}

// defaultOptions returns common ignore patterns for testing framework goroutines
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	}
}
