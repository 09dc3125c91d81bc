package scheduler

import (
	"context"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/timeutil"
)

// Start launches the tick loop in its own goroutine.
func (s *implScheduler) Start(ctx context.Context) {
	s.RescheduleReminders(ctx)

	go func() {
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.Stop()
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// tick runs one recurrence pass and refreshes reminders when anything was
// spawned.
func (s *implScheduler) tick(ctx context.Context) {
	out, err := s.uc.RunRecurrence(ctx, s.clock.Now())
	if err != nil {
		s.l.Errorf(ctx, "scheduler tick RunRecurrence: %v", err)
		return
	}
	if len(out.Instances) == 0 {
		return
	}

	s.RescheduleReminders(ctx)
	s.refresh()
}

func (s *implScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.completions {
		t.Stop()
		delete(s.completions, id)
	}
	s.clearRemindersLocked()
}

// ScheduleCompletion completes the task after the undo delay. Scheduling
// again for the same task resets the delay.
func (s *implScheduler) ScheduleCompletion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.completions[id]; ok {
		prev.Stop()
	}
	s.completions[id] = time.AfterFunc(s.undoDelay, func() {
		s.completeNow(id)
	})
}

// CancelCompletion stops a pending completion before the write happens.
func (s *implScheduler) CancelCompletion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.completions[id]
	if !ok {
		return false
	}
	delete(s.completions, id)
	return t.Stop()
}

func (s *implScheduler) completeNow(id string) {
	ctx := context.Background()

	s.mu.Lock()
	if _, ok := s.completions[id]; !ok {
		// Cancelled between firing and acquiring the lock.
		s.mu.Unlock()
		return
	}
	delete(s.completions, id)
	s.mu.Unlock()

	if _, err := s.uc.CompleteTask(ctx, id, s.clock.Now()); err != nil {
		s.l.Errorf(ctx, "scheduler CompleteTask %s: %v", id, err)
		return
	}

	s.RescheduleReminders(ctx)
	s.refresh()
}

// RescheduleReminders drops every reminder timer and rebuilds them from the
// stored tasks: one timer per uncompleted scheduled task whose start is
// still ahead.
func (s *implScheduler) RescheduleReminders(ctx context.Context) {
	tasks, err := s.uc.ListTasks(ctx, planner.ListTasksInput{})
	if err != nil {
		s.l.Errorf(ctx, "scheduler RescheduleReminders ListTasks: %v", err)
		return
	}

	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.stopCh:
		return
	default:
	}

	s.clearRemindersLocked()
	for _, t := range tasks {
		delay, ok := reminderDelay(t, now)
		if !ok {
			continue
		}
		task := t
		s.reminders[task.ID] = time.AfterFunc(delay, func() {
			s.remind(task)
		})
	}
}

func (s *implScheduler) remind(task model.Task) {
	s.mu.Lock()
	delete(s.reminders, task.ID)
	s.mu.Unlock()

	if s.onReminder != nil {
		s.onReminder(task)
	}
}

func (s *implScheduler) refresh() {
	if s.onRefresh != nil {
		s.onRefresh()
	}
}

func (s *implScheduler) clearRemindersLocked() {
	for id, t := range s.reminders {
		t.Stop()
		delete(s.reminders, id)
	}
}

// reminderDelay computes how long until the task's start instant. ok=false
// for completed, unscheduled, malformed, or already-started tasks.
func reminderDelay(t model.Task, now time.Time) (time.Duration, bool) {
	if t.Completed {
		return 0, false
	}

	var clockStr string
	switch t.Type {
	case model.TaskTypeTimeBound:
		clockStr = t.Time
	case model.TaskTypeTimeRange:
		clockStr = t.StartTime
	default:
		return 0, false
	}
	if t.Date == "" || clockStr == "" {
		return 0, false
	}

	start, err := time.ParseInLocation(timeutil.DateFormat+"T15:04", t.Date+"T"+clockStr, time.Local)
	if err != nil {
		return 0, false
	}

	delay := start.Sub(now)
	if delay <= 0 {
		return 0, false
	}
	return delay, true
}
