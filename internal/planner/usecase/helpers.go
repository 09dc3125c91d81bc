package usecase

import (
	"strings"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner/repository"
	"daynix/pkg/timeutil"
)

func listAll() repository.ListTasksOptions {
	return repository.ListTasksOptions{}
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// parseDateTime combines a YYYY-MM-DD date and HH:MM time into a local
// instant.
func parseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(timeutil.DateFormat+"T15:04", date+"T"+clock, time.Local)
}

// liveTasks hides recurring parents: only their instances are live tasks.
func liveTasks(tasks []model.Task) []model.Task {
	live := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsRecurringParent() {
			continue
		}
		live = append(live, t)
	}
	return live
}

func recurringParents(tasks []model.Task) []model.Task {
	var parents []model.Task
	for _, t := range tasks {
		if t.IsRecurringParent() {
			parents = append(parents, t)
		}
	}
	return parents
}

func matchesQuery(t model.Task, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}
