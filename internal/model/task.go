package model

import "time"

// TaskType determines which time fields on a Task are meaningful.
type TaskType string

const (
	TaskTypeFloating  TaskType = "floating"  // no scheduled time
	TaskTypeTimeBound TaskType = "timeBound" // single instant, duration assumed
	TaskTypeTimeRange TaskType = "timeRange" // explicit start/end, may cross midnight
)

// TaskStatus is the bucket a task is classified into at a given instant.
type TaskStatus string

const (
	StatusRunning   TaskStatus = "running"
	StatusUpcoming  TaskStatus = "upcoming"
	StatusOld       TaskStatus = "old"
	StatusCompleted TaskStatus = "completed"
)

// RecurrenceType is the recurrence variant of a task.
type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = "none"
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// Task is a unit of work on the planner board. The JSON shape matches the
// persisted record format, so backups round-trip byte-compatible fields.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Type        TaskType `json:"type"`

	// Calendar dates, local YYYY-MM-DD. EndDate defaults to Date and only
	// differs for timeRange tasks spanning midnight.
	Date    string `json:"date,omitempty"`
	EndDate string `json:"endDate,omitempty"`

	// Wall-clock HH:MM strings. Time for timeBound, Start/End for timeRange.
	Time      string `json:"time,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Locked      bool       `json:"locked,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// IsDaily is the legacy encoding of daily recurrence and is kept in sync
	// with RecurringType. New code reads recurrence through Recurrence().
	IsDaily       bool           `json:"isDaily,omitempty"`
	RecurringType RecurrenceType `json:"recurringType,omitempty"`
	RecurringDays []int          `json:"recurringDays,omitempty"`

	// ParentTaskID is set only on instances spawned from a recurring parent.
	ParentTaskID string `json:"parentTaskId,omitempty"`

	// LastDailyInstance lives on the parent and records when an instance was
	// last spawned, guarding against duplicate same-day instantiation.
	LastDailyInstance *time.Time `json:"lastDailyInstance,omitempty"`

	MovedCount int       `json:"movedCount,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Recurrence resolves the task's recurrence variant, folding the legacy
// IsDaily alias into daily.
func (t *Task) Recurrence() RecurrenceType {
	switch t.RecurringType {
	case RecurrenceDaily, RecurrenceWeekly:
		return t.RecurringType
	}
	if t.IsDaily {
		return RecurrenceDaily
	}
	return RecurrenceNone
}

// Normalize keeps the legacy IsDaily alias consistent with RecurringType.
// Called at the persistence boundary after loading old records.
func (t *Task) Normalize() {
	rec := t.Recurrence()
	t.RecurringType = rec
	t.IsDaily = rec == RecurrenceDaily
	if rec != RecurrenceWeekly {
		t.RecurringDays = nil
	}
}

// IsInstance reports whether the task was spawned from a recurring parent.
func (t *Task) IsInstance() bool {
	return t.ParentTaskID != ""
}

// IsRecurringParent reports whether the task is scheduling metadata that
// spawns instances rather than a live task itself.
func (t *Task) IsRecurringParent() bool {
	return t.Recurrence() != RecurrenceNone && !t.IsInstance()
}

// EndDateOrDate returns EndDate when set, falling back to Date.
func (t *Task) EndDateOrDate() string {
	if t.EndDate != "" {
		return t.EndDate
	}
	return t.Date
}
