package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"daynix/internal/model"
	"daynix/internal/planner/repository"
)

const taskColumns = `id, title, description, type, date, end_date, time, start_time, end_time,
	locked, completed, completed_at, is_daily, recurring_type, recurring_days,
	parent_task_id, last_daily_instance, moved_count, created_at`

func (r *implRepository) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	task.Normalize()
	_, err := r.db.ExecContext(ctx, `INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		taskArgs(task)...)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: create task: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var conds []string
	var args []any
	if opt.ParentTaskID != "" {
		conds = append(conds, "parent_task_id = ?")
		args = append(args, opt.ParentTaskID)
	}
	if opt.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	task.Normalize()
	args := taskArgs(task)[1:] // everything after id
	args = append(args, task.ID)
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET
		title = ?, description = ?, type = ?, date = ?, end_date = ?, time = ?,
		start_time = ?, end_time = ?, locked = ?, completed = ?, completed_at = ?,
		is_daily = ?, recurring_type = ?, recurring_days = ?, parent_task_id = ?,
		last_daily_instance = ?, moved_count = ?, created_at = ?
		WHERE id = ?`, args...)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: update task %s: %v", task.ID, err)
		return model.Task{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return task, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ReplaceAllTasks(ctx context.Context, tasks []model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Normalize()
		if _, err := tx.ExecContext(ctx, `INSERT INTO tasks (`+taskColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			taskArgs(tasks[i])...); err != nil {
			return fmt.Errorf("replace task %s: %w", tasks[i].ID, err)
		}
	}
	return tx.Commit()
}

// --- row mapping ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var locked, completed, isDaily, movedCount int
	var completedAt, lastInstance sql.NullString
	var recurringDays, createdAt string

	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Type, &t.Date, &t.EndDate,
		&t.Time, &t.StartTime, &t.EndTime, &locked, &completed, &completedAt,
		&isDaily, &t.RecurringType, &recurringDays, &t.ParentTaskID,
		&lastInstance, &movedCount, &createdAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Locked = locked != 0
	t.Completed = completed != 0
	t.IsDaily = isDaily != 0
	t.MovedCount = movedCount
	if completedAt.Valid {
		if ts, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
			t.CompletedAt = &ts
		}
	}
	if lastInstance.Valid {
		if ts, err := time.Parse(time.RFC3339, lastInstance.String); err == nil {
			t.LastDailyInstance = &ts
		}
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	if recurringDays != "" {
		// Tolerate a corrupt day list rather than dropping the row.
		_ = json.Unmarshal([]byte(recurringDays), &t.RecurringDays)
	}
	t.Normalize()
	return t, nil
}

func taskArgs(t model.Task) []any {
	var completedAt, lastInstance any
	if t.CompletedAt != nil {
		completedAt = t.CompletedAt.Format(time.RFC3339)
	}
	if t.LastDailyInstance != nil {
		lastInstance = t.LastDailyInstance.Format(time.RFC3339)
	}
	days := ""
	if len(t.RecurringDays) > 0 {
		if b, err := json.Marshal(t.RecurringDays); err == nil {
			days = string(b)
		}
	}
	return []any{
		t.ID, t.Title, t.Description, string(t.Type), t.Date, t.EndDate,
		t.Time, t.StartTime, t.EndTime, boolToInt(t.Locked), boolToInt(t.Completed),
		completedAt, boolToInt(t.IsDaily), string(t.RecurringType), days,
		t.ParentTaskID, lastInstance, t.MovedCount, t.CreatedAt.Format(time.RFC3339),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
