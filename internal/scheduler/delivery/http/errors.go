package http

import (
	"errors"

	"smart-task-scheduler/internal/scheduler"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrOwnerRequired),
		errors.Is(err, scheduler.ErrInvalidDuration),
		errors.Is(err, scheduler.ErrInvalidScope),
		errors.Is(err, scheduler.ErrInvalidPriority),
		errors.Is(err, scheduler.ErrInvalidRecurrence),
		errors.Is(err, scheduler.ErrNothingToCreate):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, scheduler.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
