package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/internal/planner/repository"
)

// AddTask validates and persists a new task. Recurring parents are seeded
// with lastDailyInstance so they don't spawn an instance the moment they
// are created.
func (uc *implUseCase) AddTask(ctx context.Context, input planner.AddTaskInput) (model.Task, error) {
	task := model.Task{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Type:          input.Type,
		Date:          input.Date,
		EndDate:       input.EndDate,
		Time:          input.Time,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Locked:        input.Locked,
		RecurringType: input.RecurringType,
		RecurringDays: input.RecurringDays,
		CreatedAt:     uc.clock.Now(),
	}
	task.Normalize()

	if err := validateTask(task); err != nil {
		return model.Task{}, err
	}

	if task.IsRecurringParent() {
		now := uc.clock.Now()
		task.LastDailyInstance = &now
	}

	created, err := uc.repo.CreateTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTask CreateTask: %v", err)
		return model.Task{}, err
	}
	return created, nil
}

// UpdateTask rewrites the editable fields of an existing task, preserving
// completion state, lineage and move bookkeeping.
func (uc *implUseCase) UpdateTask(ctx context.Context, input planner.UpdateTaskInput) (model.Task, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, planner.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.UpdateTask GetTask: %v", err)
		return model.Task{}, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Type = input.Type
	existing.Date = input.Date
	existing.EndDate = input.EndDate
	existing.Time = input.Time
	existing.StartTime = input.StartTime
	existing.EndTime = input.EndTime
	existing.Locked = input.Locked
	existing.RecurringType = input.RecurringType
	existing.RecurringDays = input.RecurringDays
	existing.Normalize()

	if err := validateTask(existing); err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTask UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return planner.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		return err
	}
	return nil
}

// CompleteTask marks a task done at now. Completion is terminal: completing
// an already-completed task changes nothing.
func (uc *implUseCase) CompleteTask(ctx context.Context, id string, now time.Time) (model.Task, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, planner.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.CompleteTask GetTask: %v", err)
		return model.Task{}, err
	}
	if task.Completed {
		return task, nil
	}

	task.Completed = true
	task.CompletedAt = &now

	updated, err := uc.repo.UpdateTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) ToggleLock(ctx context.Context, id string) (model.Task, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, planner.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.ToggleLock GetTask: %v", err)
		return model.Task{}, err
	}

	task.Locked = !task.Locked
	updated, err := uc.repo.UpdateTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleLock UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

// ListTasks returns the stored collection, hiding recurring parents from
// live views and applying the optional search query.
func (uc *implUseCase) ListTasks(ctx context.Context, input planner.ListTasksInput) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, listAll())
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return nil, err
	}

	if !input.IncludeParents {
		tasks = liveTasks(tasks)
	}
	if input.Query == "" {
		return tasks, nil
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesQuery(t, input.Query) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func validateTask(t model.Task) error {
	if t.Title == "" {
		return planner.ErrMissingTitle
	}
	switch t.Type {
	case model.TaskTypeTimeBound:
		if t.Time == "" {
			return planner.ErrMissingTime
		}
	case model.TaskTypeTimeRange:
		if t.StartTime == "" || t.EndTime == "" {
			return planner.ErrMissingRange
		}
		start, err1 := parseDateTime(t.Date, t.StartTime)
		end, err2 := parseDateTime(t.EndDateOrDate(), t.EndTime)
		if err1 == nil && err2 == nil && !end.After(start) {
			return planner.ErrEndBeforeStart
		}
	}
	if t.Recurrence() == model.RecurrenceWeekly && len(t.RecurringDays) == 0 {
		return planner.ErrWeeklyNeedsDays
	}
	return nil
}
