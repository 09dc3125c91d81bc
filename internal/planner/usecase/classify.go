package usecase

import (
	"time"

	"daynix/internal/model"
	"daynix/pkg/timeutil"
)

// classify maps one task and the current instant to a status. The function
// is total: missing or malformed time fields fall back to Upcoming so every
// task shape always gets an answer.
func classify(t model.Task, now time.Time) model.TaskStatus {
	// Completion is terminal, regardless of any date or time fields.
	if t.Completed {
		return model.StatusCompleted
	}

	today := timeutil.Date(now)
	taskDay := today
	if t.Date != "" {
		if _, err := timeutil.ParseDate(t.Date); err == nil {
			taskDay = t.Date
		}
	}
	if taskDay > today {
		return model.StatusUpcoming
	}
	if taskDay < today {
		return model.StatusOld
	}

	switch t.Type {
	case model.TaskTypeFloating:
		// Floating tasks never auto-age; they stay eligible until completed.
		return model.StatusUpcoming

	case model.TaskTypeTimeBound:
		target, ok := timeutil.ToMinutes(t.Time)
		if !ok {
			return model.StatusUpcoming
		}
		cur := timeutil.MinutesOfDay(now)
		diff := target - cur
		if diff >= -runningWindowMinutes && diff <= runningWindowMinutes {
			return model.StatusRunning
		}
		if timeutil.HasPassed(target, cur) {
			return model.StatusOld
		}
		return model.StatusUpcoming

	case model.TaskTypeTimeRange:
		start, ok1 := timeutil.ToMinutes(t.StartTime)
		end, ok2 := timeutil.ToMinutes(t.EndTime)
		if !ok1 || !ok2 {
			return model.StatusUpcoming
		}
		cur := timeutil.MinutesOfDay(now)
		if timeutil.WithinRange(start, end, cur) {
			return model.StatusRunning
		}
		if timeutil.HasPassed(end, cur) {
			return model.StatusOld
		}
		return model.StatusUpcoming
	}

	return model.StatusUpcoming
}
