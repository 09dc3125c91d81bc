package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/timeutil"
)

// shouldCreateInstance reports whether a recurring parent is due to spawn an
// instance today. Instances themselves never recur; at most one instance is
// spawned per parent per calendar day, guarded by lastDailyInstance.
func shouldCreateInstance(parent model.Task, today time.Time) bool {
	if parent.IsInstance() {
		return false
	}
	switch parent.Recurrence() {
	case model.RecurrenceDaily:
	case model.RecurrenceWeekly:
		if !containsDay(parent.RecurringDays, int(today.Weekday())) {
			return false
		}
	default:
		return false
	}
	if last := parent.LastDailyInstance; last != nil {
		if timeutil.Date(last.Local()) == timeutil.Date(today) {
			return false
		}
	}
	return true
}

// createInstance materializes today's concrete task from a recurring parent.
// The clone carries the parent's content but not its recurrence: only the
// parent is scheduling metadata.
func createInstance(parent model.Task, today time.Time) model.Task {
	instance := parent
	instance.ID = uuid.NewString()
	instance.Date = timeutil.Date(today)
	instance.EndDate = ""
	instance.Completed = false
	instance.CompletedAt = nil
	instance.ParentTaskID = parent.ID
	instance.IsDaily = false
	instance.RecurringType = model.RecurrenceNone
	instance.RecurringDays = nil
	instance.LastDailyInstance = nil
	instance.CreatedAt = today
	return instance
}

// EvaluateRecurrence runs the due check across the collection and returns
// the instances to create together with the parent updates the caller owes.
func (uc *implUseCase) EvaluateRecurrence(tasks []model.Task, today time.Time) planner.RecurrenceOutput {
	var out planner.RecurrenceOutput
	for _, t := range tasks {
		if !shouldCreateInstance(t, today) {
			continue
		}
		out.Instances = append(out.Instances, createInstance(t, today))
		out.ParentUpdates = append(out.ParentUpdates, planner.ParentUpdate{
			TaskID:            t.ID,
			LastDailyInstance: today,
		})
	}
	return out
}

// RunRecurrence evaluates recurrence against the stored collection and
// persists the results. The instance insert and the parent update are two
// independent writes; a crash between them can spawn a duplicate instance on
// the next run. Known, accepted gap.
func (uc *implUseCase) RunRecurrence(ctx context.Context, today time.Time) (planner.RecurrenceOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, listAll())
	if err != nil {
		uc.l.Errorf(ctx, "uc.RunRecurrence ListTasks: %v", err)
		return planner.RecurrenceOutput{}, err
	}

	out := uc.EvaluateRecurrence(tasks, today)
	if len(out.Instances) == 0 {
		return out, nil
	}

	for _, instance := range out.Instances {
		if _, err := uc.repo.CreateTask(ctx, instance); err != nil {
			uc.l.Errorf(ctx, "uc.RunRecurrence CreateTask: %v", err)
			return out, err
		}
	}
	for _, up := range out.ParentUpdates {
		parent, err := uc.repo.GetTask(ctx, up.TaskID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.RunRecurrence GetTask %s: %v", up.TaskID, err)
			return out, err
		}
		last := up.LastDailyInstance
		parent.LastDailyInstance = &last
		if _, err := uc.repo.UpdateTask(ctx, parent); err != nil {
			uc.l.Errorf(ctx, "uc.RunRecurrence UpdateTask %s: %v", up.TaskID, err)
			return out, err
		}
	}

	uc.l.Infof(ctx, "recurrence pass spawned %d instance(s)", len(out.Instances))
	return out, nil
}
