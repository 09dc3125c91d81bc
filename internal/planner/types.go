package planner

import (
	"time"

	"daynix/internal/model"
)

// CategorizeOutput holds the four status buckets in presentation order.
type CategorizeOutput struct {
	Running   []model.Task
	Upcoming  []model.Task
	Old       []model.Task
	Completed []model.Task
}

// All concatenates the buckets back into a single slice.
func (o CategorizeOutput) All() []model.Task {
	all := make([]model.Task, 0, len(o.Running)+len(o.Upcoming)+len(o.Old)+len(o.Completed))
	all = append(all, o.Running...)
	all = append(all, o.Upcoming...)
	all = append(all, o.Old...)
	all = append(all, o.Completed...)
	return all
}

// ParentUpdate records the lastDailyInstance write owed to a recurring
// parent after one of its instances was materialized.
type ParentUpdate struct {
	TaskID            string
	LastDailyInstance time.Time
}

// RecurrenceOutput is the result of a recurrence evaluation pass.
type RecurrenceOutput struct {
	Instances     []model.Task
	ParentUpdates []ParentUpdate
}

// AutoMoveOutput reports the tasks relocated by a bulk auto-move.
type AutoMoveOutput struct {
	Moved []model.Task
	Count int
}

// BoardOutput is the categorized view handed to the UI collaborator.
type BoardOutput struct {
	Buckets          CategorizeOutput
	ActiveSlots      []model.ActiveSlot
	RecurringParents []model.Task
}

// AddTaskInput carries a new task's fields; ID and CreatedAt are assigned by
// the use case.
type AddTaskInput struct {
	Title         string
	Description   string
	Type          model.TaskType
	Date          string
	EndDate       string
	Time          string
	StartTime     string
	EndTime       string
	Locked        bool
	RecurringType model.RecurrenceType
	RecurringDays []int
}

// UpdateTaskInput carries a full rewrite of an existing task's editable
// fields, matching the form-driven edit flow.
type UpdateTaskInput struct {
	ID            string
	Title         string
	Description   string
	Type          model.TaskType
	Date          string
	EndDate       string
	Time          string
	StartTime     string
	EndTime       string
	Locked        bool
	RecurringType model.RecurrenceType
	RecurringDays []int
}

// ListTasksInput filters the stored task collection.
type ListTasksInput struct {
	// Query matches case-insensitively against title and description.
	Query string
	// IncludeParents keeps recurring parents in the result; the live views
	// hide them since only their instances are real tasks.
	IncludeParents bool
}

// Backup is the exported archive shape. Field names and layout round-trip
// with previously exported records.
type Backup struct {
	Tasks       []model.Task      `json:"tasks"`
	Preferences model.Preferences `json:"preferences"`
	Settings    model.Settings    `json:"settings"`
	ExportDate  time.Time         `json:"exportDate"`
	Version     string            `json:"version"`
}

// ImportOutput reports what an imported backup changed.
type ImportOutput struct {
	TasksAdded int
}
