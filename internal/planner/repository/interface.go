package repository

import (
	"context"

	"daynix/internal/model"
)

// Repository is the composed interface for the planner data store.
type Repository interface {
	TaskRepository
	PreferenceRepository
	SettingsRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	// ReplaceAllTasks swaps the whole collection in one write.
	ReplaceAllTasks(ctx context.Context, tasks []model.Task) error
}

// PreferenceRepository stores the user preferences singleton.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context) (model.Preferences, bool, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error
}

// SettingsRepository stores the app settings singleton.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error
}
