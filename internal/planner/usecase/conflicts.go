package usecase

import (
	"time"

	"daynix/internal/model"
)

// taskInterval computes the scheduled interval of a task. Time-bound tasks
// get the assumed fixed duration; time-range tasks may span days through
// their end date. ok=false means the task has no usable interval.
func taskInterval(t model.Task) (start, end time.Time, ok bool) {
	switch t.Type {
	case model.TaskTypeTimeBound:
		s, err := parseDateTime(t.Date, t.Time)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		return s, s.Add(timeBoundDuration), true

	case model.TaskTypeTimeRange:
		s, err := parseDateTime(t.Date, t.StartTime)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		e, err := parseDateTime(t.EndDateOrDate(), t.EndTime)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		return s, e, true
	}
	return time.Time{}, time.Time{}, false
}

// DetectConflicts returns every task whose interval overlaps the candidate's
// (half-open test). Floating tasks never conflict in either direction;
// completed tasks and the task being edited are skipped; a malformed
// existing task is excluded from consideration rather than failing the
// check. Purely advisory, never blocks creation.
func (uc *implUseCase) DetectConflicts(candidate model.Task, tasks []model.Task, excludeID string) []model.Task {
	if candidate.Type == model.TaskTypeFloating {
		return nil
	}
	cStart, cEnd, ok := taskInterval(candidate)
	if !ok {
		return nil
	}

	var conflicts []model.Task
	for _, existing := range tasks {
		if excludeID != "" && existing.ID == excludeID {
			continue
		}
		if existing.Completed || existing.Type == model.TaskTypeFloating {
			continue
		}
		eStart, eEnd, ok := taskInterval(existing)
		if !ok {
			continue
		}
		if cStart.Before(eEnd) && cEnd.After(eStart) {
			conflicts = append(conflicts, existing)
		}
	}
	return conflicts
}
