package scheduler

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// --- Parsing ---

// ParseContext carries per-request context for the text intake parser.
type ParseContext struct {
	Owner                  string
	Timezone               string
	Locale                 string
	DefaultDurationMinutes int
}

// TaskDraft is the parser's output: a fully-defaulted, unpersisted candidate
// task. Immutable once returned; every field has a defined default.
type TaskDraft struct {
	Title           string
	Description     string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        model.Priority
	Category        string
	RecurrenceRule  *string
	Confidence      float64
	SourceText      string
}

// --- Conflicts & slots ---

// ConflictSourceTask marks a conflict caused by another stored task;
// ConflictSourceCalendar marks one caused by an external calendar event.
const (
	ConflictSourceTask     = "task"
	ConflictSourceCalendar = "calendar"
)

// ConflictReport describes one existing commitment overlapping a proposed
// interval. Derived, never persisted.
type ConflictReport struct {
	TaskID          string
	Title           string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Priority        model.Priority
	Source          string
}

// SlotSuggestion is one candidate free interval, ranked by confidence.
type SlotSuggestion struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Confidence      float64
}

// --- Series scope ---

// Scope is the breadth of a series-wide update or delete.
type Scope string

const (
	ScopeThis      Scope = "this"
	ScopeFollowing Scope = "following"
	ScopeAll       Scope = "all"
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	switch s {
	case ScopeThis, ScopeFollowing, ScopeAll:
		return true
	}
	return false
}

// MemberError reports a failed write for one member of a multi-task
// mutation. Successes are never rolled back; retries are idempotent per id.
type MemberError struct {
	TaskID string
	Err    string
}

// --- UseCase inputs ---

type ParseInput struct {
	Text    string
	Context ParseContext
}

type CreateTaskInput struct {
	Owner string
	Text  string // optional free text, parsed to fill unset fields

	// Parser context for Text; ignored when Text is empty.
	Timezone               string
	DefaultDurationMinutes int

	Title           string
	Description     string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        model.Priority
	Category        string
	RecurrenceRule  string
	Horizon         *time.Time // recurrence horizon, default one year out
}

type DetectConflictsInput struct {
	Owner           string
	Start           time.Time
	DurationMinutes int
}

type SuggestSlotsInput struct {
	Owner           string
	DurationMinutes int
	WindowDays      int // 0 = default window
}

type MaterializeInput struct {
	Owner   string
	Parent  model.Task
	RRule   string
	Horizon *time.Time
}

// UpdateFields holds the optional field changes of an update; nil means
// leave unchanged.
type UpdateFields struct {
	Title           *string
	Description     *string
	Deadline        *time.Time
	DurationMinutes *int
	Priority        *model.Priority
	Category        *string
	Status          *model.Status
	Archived        *bool
}

type UpdateTasksInput struct {
	ID     string
	Scope  Scope
	Fields UpdateFields
}

type ListTasksInput struct {
	Owner           string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// --- UseCase outputs ---

// CreateTaskOutput reports the result of the creation flow. When Conflicts is
// non-empty the task was NOT created and Suggestions carries alternatives.
type CreateTaskOutput struct {
	Task        *model.Task
	Draft       *TaskDraft // set when free text was parsed
	Conflicts   []ConflictReport
	Suggestions []SlotSuggestion

	// Recurrence results, when a rule was present.
	Occurrences    []model.Task
	Failed         []MemberError
	ExpansionError string // non-empty when the rule could not be expanded
}

type MaterializeOutput struct {
	Occurrences []model.Task
	Failed      []MemberError
}

// MutationOutput reports a series-aware update/delete: the resolved member
// set, which members were written, and which failed.
type MutationOutput struct {
	Resolved []string
	Applied  []string
	Failed   []MemberError
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Limit  int
	Offset int
}
