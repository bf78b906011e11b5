package promise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jackysz/promise/pkg/scheduler"
)

func TestNewDeferred(t *testing.T) {
	t.Run("Handle exposes the promise and both capabilities", func(t *testing.T) {
		loop := scheduler.NewLoop()

		deferred := NewDeferred[int](loop)

		require.NotNil(t, deferred.Promise)
		require.NotNil(t, deferred.Resolve)
		require.NotNil(t, deferred.Reject)
		require.Implements(t, (*Thenable[int])(nil), deferred.Promise)
		require.Equal(t, StatePending, deferred.Promise.State())
	})

	t.Run("Resolve settles the promise from outside the executor", func(t *testing.T) {
		loop := scheduler.NewLoop()

		deferred := NewDeferred[int](loop)
		deferred.Resolve(123)
		loop.Run()

		require.Equal(t, StateFulfilled, deferred.Promise.State())
		require.Equal(t, 123, deferred.Promise.Value())
	})

	t.Run("Reject settles the promise from outside the executor", func(t *testing.T) {
		loop := scheduler.NewLoop()
		reason := errors.New("error reason")

		deferred := NewDeferred[int](loop)
		deferred.Reject(reason)
		loop.Run()

		require.Equal(t, StateRejected, deferred.Promise.State())
		require.Same(t, reason, deferred.Promise.Error())
	})

	t.Run("The first settlement call wins", func(t *testing.T) {
		loop := scheduler.NewLoop()

		deferred := NewDeferred[int](loop)
		deferred.Resolve(1)
		deferred.Reject(errors.New("second call"))
		loop.Run()

		require.Equal(t, StateFulfilled, deferred.Promise.State())
		require.Equal(t, 1, deferred.Promise.Value())
		require.Nil(t, deferred.Promise.Error())
	})
}

func TestDefer(t *testing.T) {
	t.Run("Defer is a synonym for NewDeferred", func(t *testing.T) {
		loop := scheduler.NewLoop()

		deferred := Defer[int](loop)
		deferred.Resolve(123)
		loop.Run()

		require.Equal(t, StateFulfilled, deferred.Promise.State())
		require.Equal(t, 123, deferred.Promise.Value())
	})
}
