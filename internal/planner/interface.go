package planner

import (
	"context"
	"time"

	"daynix/internal/model"
)

// UseCase is the business logic interface for the planner domain.
//
// The temporal engine methods (Categorize, EvaluateRecurrence,
// DetectConflicts, AutoMove, ResolveActiveSlots) are pure: the current
// instant and the task collection are passed in explicitly, never read from
// ambient state.
type UseCase interface {
	// Board loads the task set, runs a recurrence pass, and returns the
	// categorized buckets plus currently active availability slots.
	Board(ctx context.Context, now time.Time) (BoardOutput, error)

	// Categorize partitions tasks into the four status buckets with the
	// deterministic ordering of each bucket. Pure and idempotent.
	Categorize(tasks []model.Task, now time.Time) CategorizeOutput

	// EvaluateRecurrence decides which recurring parents are due today and
	// materializes their instances. The caller persists both the instances
	// and the parent updates.
	EvaluateRecurrence(tasks []model.Task, today time.Time) RecurrenceOutput

	// RunRecurrence evaluates recurrence against the stored task set and
	// persists any spawned instances and parent updates.
	RunRecurrence(ctx context.Context, today time.Time) (RecurrenceOutput, error)

	// DetectConflicts returns every stored task whose scheduled interval
	// overlaps the candidate's. Advisory only.
	DetectConflicts(candidate model.Task, tasks []model.Task, excludeID string) []model.Task

	// AutoMove returns a copy of task moved to tomorrow, or the task
	// unchanged when locked.
	AutoMove(task model.Task, today time.Time) model.Task

	// AutoMoveBatch moves every stale unlocked task to tomorrow.
	AutoMoveBatch(ctx context.Context, now time.Time) (AutoMoveOutput, error)

	// ResolveActiveSlots reports which office/study windows are active now.
	ResolveActiveSlots(prefs model.Preferences, now time.Time) []model.ActiveSlot

	// Task CRUD
	AddTask(ctx context.Context, input AddTaskInput) (model.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string, now time.Time) (model.Task, error)
	ToggleLock(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) ([]model.Task, error)

	// Preferences
	GetPreferences(ctx context.Context) (model.Preferences, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error

	// Backup
	ExportBackup(ctx context.Context, now time.Time) (Backup, error)
	ImportBackup(ctx context.Context, b Backup) (ImportOutput, error)
}
