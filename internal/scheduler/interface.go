package scheduler

import "context"

// Scheduler owns every time-driven mutation of the planner: the periodic
// recurrence tick, delayed completions with an undo window, and per-task
// reminders. All writes funnel through the planner use case.
type Scheduler interface {
	// Start launches the tick loop. It returns immediately; the loop stops
	// when ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop halts the tick loop and clears every pending timer.
	Stop()

	// ScheduleCompletion arranges for the task to be completed after the
	// undo delay, unless cancelled first.
	ScheduleCompletion(id string)

	// CancelCompletion aborts a pending completion. Reports whether one was
	// pending; after the delay elapses the write has happened and there is
	// nothing to cancel.
	CancelCompletion(id string) bool

	// RescheduleReminders rebuilds the reminder timers from the current task
	// list. Called after every task mutation.
	RescheduleReminders(ctx context.Context)
}
