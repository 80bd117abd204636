// package testing contains shared testing utilities
package testing

import (
	"errors"
	"time"
)

// FixedClock is a test double for the book.Clock interface that always
// reports the same instant, pinning the upcoming-birthday window.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
