package usecase

import (
	"sort"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/timeutil"
)

// Categorize partitions tasks into the four status buckets and orders each
// one deterministically. Stable sorts keep input order for every tie, so the
// partition is idempotent for an unchanged clock reading.
func (uc *implUseCase) Categorize(tasks []model.Task, now time.Time) planner.CategorizeOutput {
	var out planner.CategorizeOutput

	for _, t := range tasks {
		switch classify(t, now) {
		case model.StatusRunning:
			out.Running = append(out.Running, t)
		case model.StatusOld:
			out.Old = append(out.Old, t)
		case model.StatusCompleted:
			out.Completed = append(out.Completed, t)
		default:
			out.Upcoming = append(out.Upcoming, t)
		}
	}

	// Running: time-bound tasks ascend by time, everything else keeps its
	// relative input order.
	sort.SliceStable(out.Running, func(i, j int) bool {
		a, b := out.Running[i], out.Running[j]
		if a.Type == model.TaskTypeTimeBound && b.Type == model.TaskTypeTimeBound {
			am, _ := timeutil.ToMinutes(a.Time)
			bm, _ := timeutil.ToMinutes(b.Time)
			return am < bm
		}
		return false
	})

	// Upcoming: by date first, then by start within a shared type.
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		a, b := out.Upcoming[i], out.Upcoming[j]
		if a.Date != "" && b.Date != "" && a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Type == b.Type {
			switch a.Type {
			case model.TaskTypeTimeBound:
				am, _ := timeutil.ToMinutes(a.Time)
				bm, _ := timeutil.ToMinutes(b.Time)
				return am < bm
			case model.TaskTypeTimeRange:
				am, _ := timeutil.ToMinutes(a.StartTime)
				bm, _ := timeutil.ToMinutes(b.StartTime)
				return am < bm
			}
		}
		return false
	})

	// Old: most recently lapsed first.
	sort.SliceStable(out.Old, func(i, j int) bool {
		return oldSortKey(out.Old[i]).After(oldSortKey(out.Old[j]))
	})

	// Completed: most recently finished first.
	sort.SliceStable(out.Completed, func(i, j int) bool {
		return completedAtOrZero(out.Completed[i]).After(completedAtOrZero(out.Completed[j]))
	})

	return out
}

// oldSortKey orders lapsed tasks by their date, falling back to creation
// time when no date is set.
func oldSortKey(t model.Task) time.Time {
	if t.Date != "" {
		if d, err := timeutil.ParseDate(t.Date); err == nil {
			return d
		}
	}
	return t.CreatedAt
}

func completedAtOrZero(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return time.Time{}
}
