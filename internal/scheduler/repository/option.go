package repository

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Owner           string
	Title           string
	Description     string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        model.Priority
	Category        string
	Recurring       bool
	ParentTaskID    *string
	OccurrenceIndex *int
	RRuleString     *string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID    string
	Owner string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// Nil pointers mean "no filter on this field".
type ListTasksOptions struct {
	Owner        string
	Archived     *bool
	Recurring    *bool
	ParentTaskID *string
	Schedulable  bool // only tasks with both deadline and duration set
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
	Limit        int
	Offset       int
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Nil pointers mean "leave unchanged".
type UpdateTaskOptions struct {
	ID              string
	Title           *string
	Description     *string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        *model.Priority
	Category        *string
	Status          *model.Status
	Archived        *bool
}
