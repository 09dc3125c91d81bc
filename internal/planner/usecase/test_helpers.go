package usecase

import (
	"context"
	"errors"

	"daynix/internal/model"
	"daynix/internal/planner/repository"
)

// Mock logger for testing
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

// memRepo is an in-memory repository.Repository for tests. Order-preserving
// so categorization stability is observable.
type memRepo struct {
	tasks    []model.Task
	prefs    *model.Preferences
	settings model.Settings

	failUpdateParent bool // simulate the parent write failing after an instance insert
}

func (m *memRepo) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *memRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if opt.ParentTaskID != "" && t.ParentTaskID != opt.ParentTaskID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memRepo) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if m.failUpdateParent && task.IsRecurringParent() {
		return model.Task{}, errors.New("simulated parent write failure")
	}
	for i, t := range m.tasks {
		if t.ID == task.ID {
			m.tasks[i] = task
			return task, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *memRepo) DeleteTask(ctx context.Context, id string) error {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memRepo) ReplaceAllTasks(ctx context.Context, tasks []model.Task) error {
	m.tasks = append([]model.Task(nil), tasks...)
	return nil
}

func (m *memRepo) GetPreferences(ctx context.Context) (model.Preferences, bool, error) {
	if m.prefs == nil {
		return model.Preferences{}, false, nil
	}
	return *m.prefs, true, nil
}

func (m *memRepo) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	m.prefs = &prefs
	return nil
}

func (m *memRepo) GetSettings(ctx context.Context) (model.Settings, error) {
	return m.settings, nil
}

func (m *memRepo) SaveSettings(ctx context.Context, settings model.Settings) error {
	m.settings = settings
	return nil
}
