package usecase

import (
	"context"

	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/recurrence"
)

// Materialize expands an RFC5545 rule into persisted occurrence tasks,
// children of the given parent. Occurrence indices are 0-based in
// chronological order. Partial persistence failures are reported per member
// and never rolled back.
func (uc *implUseCase) Materialize(ctx context.Context, input scheduler.MaterializeInput) (scheduler.MaterializeOutput, error) {
	if input.Owner == "" {
		return scheduler.MaterializeOutput{}, scheduler.ErrOwnerRequired
	}

	from := now().In(uc.location)
	if input.Parent.Deadline != nil {
		from = *input.Parent.Deadline
	}
	until := from.AddDate(0, 0, uc.opts.HorizonDays)
	if input.Horizon != nil {
		until = *input.Horizon
	}

	stamps, err := recurrence.Expand(input.RRule, from, until)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Materialize expand %q: %v", input.RRule, err)
		return scheduler.MaterializeOutput{}, scheduler.ErrInvalidRecurrence
	}

	out := scheduler.MaterializeOutput{}
	rule := input.RRule
	for i, stamp := range stamps {
		deadline := stamp
		idx := i
		occurrence, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			Owner:           input.Owner,
			Title:           input.Parent.Title,
			Description:     input.Parent.Description,
			Deadline:        &deadline,
			DurationMinutes: input.Parent.DurationMinutes,
			Priority:        input.Parent.Priority,
			Category:        input.Parent.Category,
			Recurring:       true,
			ParentTaskID:    &input.Parent.ID,
			OccurrenceIndex: &idx,
			RRuleString:     &rule,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Materialize create occurrence %d: %v", i, err)
			out.Failed = append(out.Failed, scheduler.MemberError{Err: err.Error()})
			continue
		}
		out.Occurrences = append(out.Occurrences, occurrence)
	}
	return out, nil
}
