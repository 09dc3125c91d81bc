package repository

// ListTasksOptions holds filter parameters for listing tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	// ParentTaskID filters instances of one recurring parent.
	ParentTaskID string
	// Completed filters by completion state when set.
	Completed *bool
}
