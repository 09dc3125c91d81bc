package usecase

import (
	"context"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/timeutil"
)

// AutoMove rewrites a stale task to tomorrow. Locked tasks are exempt and
// come back unchanged.
func (uc *implUseCase) AutoMove(task model.Task, today time.Time) model.Task {
	if task.Locked {
		return task
	}
	task.Date = timeutil.Date(today.AddDate(0, 0, 1))
	task.MovedCount++
	return task
}

// AutoMoveBatch moves every task in the Old bucket that is neither locked
// nor completed. When nothing is eligible it reports ErrNothingToMove
// without performing any write.
func (uc *implUseCase) AutoMoveBatch(ctx context.Context, now time.Time) (planner.AutoMoveOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, listAll())
	if err != nil {
		uc.l.Errorf(ctx, "uc.AutoMoveBatch ListTasks: %v", err)
		return planner.AutoMoveOutput{}, err
	}

	// Recurring parents are scheduling metadata, never part of the board, so
	// they are never auto-moved.
	buckets := uc.Categorize(liveTasks(tasks), now)

	var eligible []model.Task
	for _, t := range buckets.Old {
		if t.Locked || t.Completed {
			continue
		}
		eligible = append(eligible, t)
	}
	if len(eligible) == 0 {
		return planner.AutoMoveOutput{}, planner.ErrNothingToMove
	}

	out := planner.AutoMoveOutput{}
	for _, t := range eligible {
		moved := uc.AutoMove(t, now)
		if _, err := uc.repo.UpdateTask(ctx, moved); err != nil {
			uc.l.Errorf(ctx, "uc.AutoMoveBatch UpdateTask %s: %v", t.ID, err)
			return out, err
		}
		out.Moved = append(out.Moved, moved)
	}
	out.Count = len(out.Moved)
	return out, nil
}
