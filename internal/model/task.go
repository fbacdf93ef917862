package model

import (
	"time"

	"smart-task-scheduler/pkg/interval"
)

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Status of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task is the persisted task record.
//
// Series convention: a non-recurring task has ParentTaskID and
// OccurrenceIndex both nil. A materialized occurrence has both set, with
// OccurrenceIndex strictly increasing in generation order within one series.
// The series itself is never stored as an object, only reconstructed by
// filtering on ParentTaskID.
type Task struct {
	ID              string
	Owner           string
	Title           string
	Description     string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        Priority
	Category        string
	Status          Status
	Archived        bool
	Recurring       bool
	ParentTaskID    *string
	OccurrenceIndex *int
	RRuleString     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Schedulable reports whether the task occupies a concrete time span.
func (t Task) Schedulable() bool {
	return t.Deadline != nil && t.DurationMinutes != nil && *t.DurationMinutes > 0
}

// Interval returns the task's occupied time span, if schedulable.
func (t Task) Interval() (interval.Interval, bool) {
	if !t.Schedulable() {
		return interval.Interval{}, false
	}
	return interval.Interval{Start: *t.Deadline, DurationMinutes: *t.DurationMinutes}, true
}
