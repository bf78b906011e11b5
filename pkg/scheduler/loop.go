package scheduler

import (
	"github.com/jackysz/promise/pkg/q"
)

// Loop is a deterministic single-threaded scheduler. Tasks accumulate until
// the owner drives them with Step or Run, which makes settlement ordering
// observable without timers or goroutines. Not safe for concurrent use.
type Loop struct {
	tasks q.Queue[func()]
}

func NewLoop() *Loop {
	return &Loop{}
}

// Schedule appends the task for a later turn.
func (l *Loop) Schedule(task func()) {
	l.tasks.Enqueue(task)
}

// Step runs the next task, reporting false when no tasks remain.
func (l *Loop) Step() bool {
	task, ok := l.tasks.Dequeue()
	if !ok {
		return false
	}

	task()

	return true
}

// Run steps until the queue is empty, including tasks scheduled by the tasks
// themselves.
func (l *Loop) Run() {
	for l.Step() {
	}
}

// Size reports the number of tasks waiting to run.
func (l *Loop) Size() int {
	return l.tasks.Len()
}
