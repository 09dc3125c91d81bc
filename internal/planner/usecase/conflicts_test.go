package usecase

import (
	"testing"

	"daynix/internal/model"
)

func TestDetectConflicts(t *testing.T) {
	uc := newTestUseCase(&memRepo{})

	a := model.Task{ID: "a", Type: model.TaskTypeTimeBound, Date: "2025-03-11", Time: "09:30"}
	b := model.Task{ID: "b", Type: model.TaskTypeTimeBound, Date: "2025-03-11", Time: "10:00"}

	t.Run("assumed duration makes overlap symmetric", func(t *testing.T) {
		// a runs 09:30-10:30, b runs 10:00-11:00.
		if got := uc.DetectConflicts(a, []model.Task{b}, ""); len(got) != 1 || got[0].ID != "b" {
			t.Errorf("a vs b = %v", ids(got))
		}
		if got := uc.DetectConflicts(b, []model.Task{a}, ""); len(got) != 1 || got[0].ID != "a" {
			t.Errorf("b vs a = %v", ids(got))
		}
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		c := model.Task{ID: "c", Type: model.TaskTypeTimeBound, Date: "2025-03-11", Time: "10:30"}
		if got := uc.DetectConflicts(a, []model.Task{c}, ""); len(got) != 0 {
			t.Errorf("back-to-back tasks reported as conflict: %v", ids(got))
		}
	})

	t.Run("different days never conflict", func(t *testing.T) {
		d := model.Task{ID: "d", Type: model.TaskTypeTimeBound, Date: "2025-03-12", Time: "09:30"}
		if got := uc.DetectConflicts(a, []model.Task{d}, ""); len(got) != 0 {
			t.Errorf("cross-day conflict: %v", ids(got))
		}
	})

	t.Run("range task overlaps time-bound task", func(t *testing.T) {
		r := model.Task{ID: "r", Type: model.TaskTypeTimeRange, Date: "2025-03-11", StartTime: "08:00", EndTime: "09:45"}
		if got := uc.DetectConflicts(a, []model.Task{r}, ""); len(got) != 1 {
			t.Errorf("range overlap missed: %v", ids(got))
		}
	})

	t.Run("multi-day range spans into the candidate", func(t *testing.T) {
		r := model.Task{
			ID: "r", Type: model.TaskTypeTimeRange,
			Date: "2025-03-10", EndDate: "2025-03-11",
			StartTime: "22:00", EndTime: "10:00",
		}
		if got := uc.DetectConflicts(a, []model.Task{r}, ""); len(got) != 1 {
			t.Errorf("overnight range missed: %v", ids(got))
		}
	})

	t.Run("floating never conflicts either way", func(t *testing.T) {
		f := model.Task{ID: "f", Type: model.TaskTypeFloating, Date: "2025-03-11"}
		if got := uc.DetectConflicts(f, []model.Task{a, b}, ""); got != nil {
			t.Errorf("floating candidate conflicts: %v", ids(got))
		}
		if got := uc.DetectConflicts(a, []model.Task{f, b}, ""); len(got) != 1 || got[0].ID != "b" {
			t.Errorf("floating existing counted: %v", ids(got))
		}
	})

	t.Run("completed and excluded tasks are skipped", func(t *testing.T) {
		done := b
		done.Completed = true
		if got := uc.DetectConflicts(a, []model.Task{done}, ""); len(got) != 0 {
			t.Errorf("completed task counted: %v", ids(got))
		}
		if got := uc.DetectConflicts(a, []model.Task{a, b}, "a"); len(got) != 1 || got[0].ID != "b" {
			t.Errorf("self not excluded while editing: %v", ids(got))
		}
	})

	t.Run("malformed existing task is ignored", func(t *testing.T) {
		bad := model.Task{ID: "bad", Type: model.TaskTypeTimeBound, Date: "2025-03-11", Time: "25:99"}
		if got := uc.DetectConflicts(a, []model.Task{bad, b}, ""); len(got) != 1 || got[0].ID != "b" {
			t.Errorf("malformed task handling = %v", ids(got))
		}
	})
}
