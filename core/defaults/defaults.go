// Package defaults provides the deferred default computations used by the
// built-in schemas: clock reads, identifier generation, and a sequential
// generator for tests.
package defaults

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// UTCNow reads the current instant in UTC.
// Sharing-flagged options backed by this computation observe one clock
// read per resolution call.
func UTCNow() (any, error) {
	return time.Now().UTC(), nil
}

// UUID generates a random v4 identifier string.
// Never flag options backed by this for sharing: independently generated
// identifiers must diverge.
func UUID() (any, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}

// Sequential generates monotonically increasing values, for tests that
// need to observe how many times a computation ran.
type Sequential struct {
	counter uint64
}

// NewSequential creates a sequential generator starting at 1.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Next returns the next value.
func (s *Sequential) Next() (any, error) {
	return atomic.AddUint64(&s.counter, 1), nil
}

// Reset resets the counter.
func (s *Sequential) Reset() {
	atomic.StoreUint64(&s.counter, 0)
}
