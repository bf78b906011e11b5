package scheduler

import (
	"sync"

	"github.com/jackysz/promise/pkg/q"
)

// Async runs tasks on a single background goroutine, preserving scheduling
// order. Schedule never blocks and may be called from any goroutine,
// including from inside a running task.
type Async struct {
	mu     sync.Mutex
	wake   *sync.Cond
	tasks  q.Queue[func()]
	closed bool
	done   chan struct{}
}

func NewAsync() *Async {
	a := &Async{
		done: make(chan struct{}),
	}
	a.wake = sync.NewCond(&a.mu)

	go a.run()

	return a
}

// Schedule enqueues the task. After Shutdown it is a no-op.
func (a *Async) Schedule(task func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	a.tasks.Enqueue(task)
	a.wake.Signal()
}

// Shutdown stops accepting new tasks, runs the ones already queued, and
// returns once the background goroutine has exited.
func (a *Async) Shutdown() {
	a.mu.Lock()
	a.closed = true
	a.wake.Signal()
	a.mu.Unlock()

	<-a.done
}

func (a *Async) run() {
	defer close(a.done)

	for {
		a.mu.Lock()
		for a.tasks.Len() == 0 && !a.closed {
			a.wake.Wait()
		}
		task, ok := a.tasks.Dequeue()
		a.mu.Unlock()

		if !ok {
			return
		}

		task()
	}
}
