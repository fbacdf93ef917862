package scheduler

import (
	"context"

	"smart-task-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns free text into a structured, fully-defaulted TaskDraft
	// with a confidence score. Malformed text never yields an error; the
	// parser degrades to a minimal draft instead.
	Parse(ctx context.Context, input ParseInput) (TaskDraft, error)

	// Create runs the full creation flow: parse (if text), conflict check
	// (if schedulable), recurrence materialization (if a rule is present).
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// DetectConflicts returns every existing commitment overlapping the
	// proposed interval. Read-only.
	DetectConflicts(ctx context.Context, input DetectConflictsInput) ([]ConflictReport, error)

	// SuggestSlots scans the working-hours calendar for free intervals.
	SuggestSlots(ctx context.Context, input SuggestSlotsInput) ([]SlotSuggestion, error)

	// Materialize expands a recurrence rule into persisted occurrences.
	Materialize(ctx context.Context, input MaterializeInput) (MaterializeOutput, error)

	// ResolveScope partitions a recurring series into the member set
	// affected by a scoped mutation. It never invents occurrences.
	ResolveScope(ctx context.Context, taskID string, scope Scope) ([]string, error)

	// Update applies the same field changes to every member resolved by the
	// scope. Partial failures are reported, not rolled back.
	Update(ctx context.Context, input UpdateTasksInput) (MutationOutput, error)

	// Delete removes every member resolved by the scope.
	Delete(ctx context.Context, id string, scope Scope) (MutationOutput, error)

	// Task CRUD surface
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (model.Task, error)
}
