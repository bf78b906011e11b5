package promise

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jackysz/promise/pkg/q"
)

func NewCallsRegistry(expectedCalls uint) *callsRegistry {
	return &callsRegistry{
		expectedCalls: expectedCalls,
	}
}

// callsRegistry records named call sites in invocation order, so tests can
// assert both that a set of handlers ran and in which order.
type callsRegistry struct {
	mutex sync.RWMutex

	calls         q.Queue[string]
	expectedCalls uint
}

func (r *callsRegistry) Register(place string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if 0 == r.expectedCalls {
		panic("trying to register unexpected call: " + place)
	}

	r.calls.Enqueue(place)
	r.expectedCalls--
}

func (r *callsRegistry) Summarize() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return strings.Join(r.calls, "|")
}

// AssertCurrentCallsStackIs compares the calls registered so far; meant for
// the deterministic Loop scheduler, where no waiting is involved.
func (r *callsRegistry) AssertCurrentCallsStackIs(t *testing.T, expectedRegistry string) {
	require.Equal(t, expectedRegistry, r.Summarize())
}

// AssertCompletedBefore waits for all expected calls to arrive; meant for the
// Async scheduler, where handlers run on a background goroutine.
func (r *callsRegistry) AssertCompletedBefore(t *testing.T, expectedRegistry string, timeLimit time.Duration) {
	deadline := time.Now().Add(timeLimit)

	for {
		r.mutex.RLock()
		callsLeft := r.expectedCalls
		r.mutex.RUnlock()

		if 0 == callsLeft {
			require.Equal(t, expectedRegistry, r.Summarize())
			return
		}

		if time.Now().After(deadline) {
			require.FailNowf(
				t,
				"Calls registry assertion timeout",
				"There are still %d expected call(s) left. Calls registered: %v.",
				callsLeft,
				r.Summarize(),
			)
			return
		}

		time.Sleep(time.Millisecond)
	}
}
