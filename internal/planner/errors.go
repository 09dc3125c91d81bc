package planner

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrMissingTitle    = errors.New("task title is required")
	ErrMissingTime     = errors.New("time-bound task requires a time")
	ErrMissingRange    = errors.New("time-range task requires start and end times")
	ErrEndBeforeStart  = errors.New("end must be after start; overnight tasks need an end date on the next day")
	ErrWeeklyNeedsDays = errors.New("weekly recurring task requires at least one day")
	ErrNothingToMove   = errors.New("no tasks eligible to move")
	ErrInvalidBackup   = errors.New("invalid backup payload")
)
