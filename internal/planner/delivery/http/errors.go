package http

import (
	"errors"

	"daynix/internal/planner"
	pkgErrors "daynix/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, planner.ErrMissingTitle),
		errors.Is(err, planner.ErrMissingTime),
		errors.Is(err, planner.ErrMissingRange),
		errors.Is(err, planner.ErrEndBeforeStart),
		errors.Is(err, planner.ErrWeeklyNeedsDays):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, planner.ErrNothingToMove):
		return pkgErrors.NewHTTPError(400, "no tasks eligible to move")
	case errors.Is(err, planner.ErrInvalidBackup):
		return pkgErrors.NewHTTPError(400, "invalid backup payload")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
