package scheduler

import "errors"

var (
	ErrOwnerRequired     = errors.New("owner is required")
	ErrInvalidDuration   = errors.New("duration must be between 1 minute and one week")
	ErrInvalidScope      = errors.New("scope must be one of: this, following, all")
	ErrInvalidPriority   = errors.New("unknown priority")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidRecurrence = errors.New("malformed recurrence rule")
	ErrNothingToCreate   = errors.New("either text or a title is required")
)
