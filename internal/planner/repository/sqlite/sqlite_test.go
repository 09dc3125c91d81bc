package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	repo, closeRepo, err := New(filepath.Join(t.TempDir(), "planner.db"), &mockLogger{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = closeRepo() })
	return repo
}

func TestTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	done := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	last := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:                "t1",
		Title:             "Weekly review",
		Description:       "walk the board",
		Type:              model.TaskTypeTimeRange,
		Date:              "2025-03-11",
		EndDate:           "2025-03-12",
		StartTime:         "22:00",
		EndTime:           "06:00",
		Locked:            true,
		Completed:         true,
		CompletedAt:       &done,
		RecurringType:     model.RecurrenceWeekly,
		RecurringDays:     []int{1, 3, 5},
		LastDailyInstance: &last,
		MovedCount:        2,
		CreatedAt:         time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	if _, err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	got, err := repo.GetTask(ctx, "t1")
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.Title != task.Title || got.Type != task.Type || !got.Locked || !got.Completed {
		t.Errorf("round trip mangled fields: %+v", got)
	}
	if !reflect.DeepEqual(got.RecurringDays, task.RecurringDays) {
		t.Errorf("recurringDays = %v", got.RecurringDays)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Errorf("completedAt = %v", got.CompletedAt)
	}
	if got.LastDailyInstance == nil || !got.LastDailyInstance.Equal(last) {
		t.Errorf("lastDailyInstance = %v", got.LastDailyInstance)
	}
	if !got.CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("createdAt = %v", got.CreatedAt)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.GetTask(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateTask(ctx, model.Task{ID: "missing", Title: "x", CreatedAt: time.Now()}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("update error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteTask(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("delete error = %v, want ErrNotFound", err)
	}
}

func TestListTasks_Filters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	seed := []model.Task{
		{ID: "p", Title: "Parent", IsDaily: true, CreatedAt: base},
		{ID: "i1", Title: "Instance", ParentTaskID: "p", CreatedAt: base.Add(time.Minute)},
		{ID: "d", Title: "Done", Completed: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, task := range seed {
		if _, err := repo.CreateTask(ctx, task); err != nil {
			t.Fatalf("CreateTask(%s) error = %v", task.ID, err)
		}
	}

	all, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d tasks, want 3", len(all))
	}
	// Stable ordering by creation time.
	if all[0].ID != "p" || all[2].ID != "d" {
		t.Errorf("order = %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}

	children, err := repo.ListTasks(ctx, repository.ListTasksOptions{ParentTaskID: "p"})
	if err != nil {
		t.Fatalf("ListTasks(parent) error = %v", err)
	}
	if len(children) != 1 || children[0].ID != "i1" {
		t.Errorf("children = %+v", children)
	}

	uncompleted := false
	open, err := repo.ListTasks(ctx, repository.ListTasksOptions{Completed: &uncompleted})
	if err != nil {
		t.Fatalf("ListTasks(open) error = %v", err)
	}
	if len(open) != 2 {
		t.Errorf("open = %d, want 2", len(open))
	}
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	task := model.Task{ID: "t1", Title: "Before", CreatedAt: time.Now().UTC().Truncate(time.Second)}
	if _, err := repo.CreateTask(ctx, task); err != nil {
		t.Fatal(err)
	}

	task.Title = "After"
	task.MovedCount = 1
	if _, err := repo.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	got, err := repo.GetTask(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "After" || got.MovedCount != 1 {
		t.Errorf("updated task = %+v", got)
	}
}

func TestReplaceAllTasks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := repo.CreateTask(ctx, model.Task{ID: "old", Title: "Old", CreatedAt: now}); err != nil {
		t.Fatal(err)
	}

	replacement := []model.Task{
		{ID: "a", Title: "A", CreatedAt: now},
		{ID: "b", Title: "B", CreatedAt: now.Add(time.Minute)},
	}
	if err := repo.ReplaceAllTasks(ctx, replacement); err != nil {
		t.Fatalf("ReplaceAllTasks() error = %v", err)
	}

	all, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d tasks, want 2", len(all))
	}
	if _, err := repo.GetTask(ctx, "old"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("old task survived the replace: %v", err)
	}
}

func TestLegacyDailyFlagNormalizedOnRead(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	// Records written before recurringType existed only carry isDaily.
	task := model.Task{ID: "legacy", Title: "Standup", IsDaily: true, CreatedAt: time.Now().UTC()}
	if _, err := repo.CreateTask(ctx, task); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetTask(ctx, "legacy")
	if err != nil {
		t.Fatal(err)
	}
	if got.RecurringType != model.RecurrenceDaily || !got.IsDaily {
		t.Errorf("legacy record not normalized: recurringType=%q isDaily=%v", got.RecurringType, got.IsDaily)
	}
}

func TestPreferencesAndSettingsRecords(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, found, err := repo.GetPreferences(ctx)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if found {
		t.Error("preferences reported found in an empty store")
	}

	prefs := model.DefaultPreferences()
	prefs.Theme = "light"
	prefs.StudySlots = []model.StudySlot{{Start: "20:00", End: "22:00", Days: []int{1, 3}}}
	if err := repo.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}

	got, found, err := repo.GetPreferences(ctx)
	if err != nil || !found {
		t.Fatalf("GetPreferences() = found %v, err %v", found, err)
	}
	if got.Theme != "light" || !reflect.DeepEqual(got.StudySlots, prefs.StudySlots) {
		t.Errorf("preferences round trip = %+v", got)
	}

	last := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	settings := model.Settings{BackupLocation: "/backups", LastBackup: &last}
	if err := repo.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	gotSettings, err := repo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if gotSettings.BackupLocation != "/backups" || gotSettings.LastBackup == nil || !gotSettings.LastBackup.Equal(last) {
		t.Errorf("settings round trip = %+v", gotSettings)
	}
}
