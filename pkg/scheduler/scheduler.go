// Package scheduler provides the task queues that drive promise settlement.
//
// A promise never settles inline: calling a resolve or reject capability only
// schedules the state transition and callback drain, so observers registered
// before the next turn are guaranteed to run after the scheduling call has
// returned. Two implementations are provided: Loop, a deterministic
// caller-driven loop for tests and embedding, and Async, a single background
// goroutine for free-running use.
package scheduler

// Scheduler defers a task to a later turn of its run loop. Tasks run one at a
// time, in scheduling order, and never before the Schedule call returns.
type Scheduler interface {
	Schedule(task func())
}
