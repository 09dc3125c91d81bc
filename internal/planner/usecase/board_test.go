package usecase

import (
	"context"
	"testing"

	"daynix/internal/model"
)

func TestBoard(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{tasks: []model.Task{
		{ID: "today", Type: model.TaskTypeFloating, Date: "2025-03-11", Title: "Errand"},
		{ID: "stale", Date: "2025-03-09", Title: "Lapsed"},
		{ID: "parent", Title: "Standup", Time: "09:00", Type: model.TaskTypeTimeBound, RecurringType: model.RecurrenceDaily},
	}}
	uc := newTestUseCase(repo)

	out, err := uc.Board(ctx, testNow)
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}

	// The recurrence pass ran first, so the spawned instance is already on
	// the board while the parent stays off it.
	all := out.Buckets.All()
	if contains(ids(all), "parent") {
		t.Errorf("recurring parent leaked onto the board: %v", ids(all))
	}
	if len(all) != 3 {
		t.Fatalf("board holds %d tasks, want 3 (including the spawned instance): %v", len(all), ids(all))
	}

	var instance *model.Task
	for i := range all {
		if all[i].ParentTaskID == "parent" {
			instance = &all[i]
		}
	}
	if instance == nil {
		t.Fatal("spawned instance missing from the board")
	}
	if instance.Date != "2025-03-11" {
		t.Errorf("instance date = %q", instance.Date)
	}

	if len(out.RecurringParents) != 1 || out.RecurringParents[0].ID != "parent" {
		t.Errorf("recurringParents = %v", ids(out.RecurringParents))
	}
}

func TestBoard_ActiveSlots(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	uc := newTestUseCase(repo)

	prefs := model.DefaultPreferences()
	prefs.OfficeStartTime = "09:00"
	prefs.OfficeEndTime = "18:00"
	prefs.OfficeDays = []int{1, 2, 3, 4, 5}
	if err := uc.SavePreferences(ctx, prefs); err != nil {
		t.Fatal(err)
	}

	out, err := uc.Board(ctx, testNow)
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if len(out.ActiveSlots) != 1 || out.ActiveSlots[0].Kind != model.SlotKindOffice {
		t.Errorf("activeSlots = %+v", out.ActiveSlots)
	}
}
