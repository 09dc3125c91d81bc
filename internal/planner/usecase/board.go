package usecase

import (
	"context"
	"time"

	"daynix/internal/planner"
)

// Board assembles the categorized view: a recurrence pass first (reloading
// the collection whenever instances were spawned, so new instances appear
// and parents stay hidden), then categorization and active-slot resolution.
func (uc *implUseCase) Board(ctx context.Context, now time.Time) (planner.BoardOutput, error) {
	if _, err := uc.RunRecurrence(ctx, now); err != nil {
		return planner.BoardOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, listAll())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Board ListTasks: %v", err)
		return planner.BoardOutput{}, err
	}

	prefs, err := uc.GetPreferences(ctx)
	if err != nil {
		return planner.BoardOutput{}, err
	}

	return planner.BoardOutput{
		Buckets:          uc.Categorize(liveTasks(tasks), now),
		ActiveSlots:      uc.ResolveActiveSlots(prefs, now),
		RecurringParents: recurringParents(tasks),
	}, nil
}
