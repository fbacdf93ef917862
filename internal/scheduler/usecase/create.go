package usecase

import (
	"context"
	"errors"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/interval"
	"smart-task-scheduler/pkg/textclass"
)

// Create runs the full creation flow: parse free text to fill unset fields,
// gate on conflicts when the task is schedulable, persist, and materialize
// the recurrence series when a rule is present. A failed expansion keeps the
// parent and reports the failure; conflicts block creation and return
// alternative slots instead.
func (uc *implUseCase) Create(ctx context.Context, input scheduler.CreateTaskInput) (scheduler.CreateTaskOutput, error) {
	if input.Owner == "" {
		return scheduler.CreateTaskOutput{}, scheduler.ErrOwnerRequired
	}
	if input.Text == "" && input.Title == "" {
		return scheduler.CreateTaskOutput{}, scheduler.ErrNothingToCreate
	}

	out := scheduler.CreateTaskOutput{}

	if input.Text != "" {
		draft, err := uc.Parse(ctx, scheduler.ParseInput{
			Text: input.Text,
			Context: scheduler.ParseContext{
				Owner:                  input.Owner,
				Timezone:               input.Timezone,
				DefaultDurationMinutes: input.DefaultDurationMinutes,
			},
		})
		if err != nil {
			return scheduler.CreateTaskOutput{}, err
		}
		out.Draft = &draft
		fillFromDraft(&input, draft)
	}

	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return scheduler.CreateTaskOutput{}, scheduler.ErrInvalidPriority
	}
	if input.Category == "" {
		input.Category = textclass.DefaultCategory
	}
	if input.DurationMinutes != nil {
		if _, err := interval.New(now(), *input.DurationMinutes); err != nil {
			return scheduler.CreateTaskOutput{}, scheduler.ErrInvalidDuration
		}
	}

	// Schedulable tasks are gated on conflicts before anything is written.
	if input.Deadline != nil && input.DurationMinutes != nil {
		conflicts, err := uc.DetectConflicts(ctx, scheduler.DetectConflictsInput{
			Owner:           input.Owner,
			Start:           *input.Deadline,
			DurationMinutes: *input.DurationMinutes,
		})
		if err != nil {
			return scheduler.CreateTaskOutput{}, err
		}
		if len(conflicts) > 0 {
			out.Conflicts = conflicts
			suggestions, err := uc.SuggestSlots(ctx, scheduler.SuggestSlotsInput{
				Owner:           input.Owner,
				DurationMinutes: *input.DurationMinutes,
			})
			if err != nil {
				uc.l.Warnf(ctx, "uc.Create suggest alternatives: %v", err)
			}
			out.Suggestions = suggestions
			return out, nil
		}
	}

	recurring := input.RecurrenceRule != ""
	var rrule *string
	if recurring {
		rrule = &input.RecurrenceRule
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Owner:           input.Owner,
		Title:           input.Title,
		Description:     input.Description,
		Deadline:        input.Deadline,
		DurationMinutes: input.DurationMinutes,
		Priority:        input.Priority,
		Category:        input.Category,
		Recurring:       recurring,
		RRuleString:     rrule,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return scheduler.CreateTaskOutput{}, err
	}
	out.Task = &task

	if recurring {
		materialized, err := uc.Materialize(ctx, scheduler.MaterializeInput{
			Owner:   input.Owner,
			Parent:  task,
			RRule:   input.RecurrenceRule,
			Horizon: input.Horizon,
		})
		if err != nil {
			// the parent stays; the caller learns the series is empty
			if errors.Is(err, scheduler.ErrInvalidRecurrence) {
				out.ExpansionError = err.Error()
				return out, nil
			}
			return out, err
		}
		out.Occurrences = materialized.Occurrences
		out.Failed = materialized.Failed
	}

	return out, nil
}

// fillFromDraft copies parsed fields into input slots the caller left unset.
// Explicit caller fields always win over parsed ones.
func fillFromDraft(input *scheduler.CreateTaskInput, draft scheduler.TaskDraft) {
	if input.Title == "" {
		input.Title = draft.Title
	}
	if input.Description == "" {
		input.Description = draft.Description
	}
	if input.Deadline == nil {
		input.Deadline = draft.Deadline
	}
	if input.DurationMinutes == nil {
		input.DurationMinutes = draft.DurationMinutes
	}
	if input.Priority == "" {
		input.Priority = draft.Priority
	}
	if input.Category == "" {
		input.Category = draft.Category
	}
	if input.RecurrenceRule == "" && draft.RecurrenceRule != nil {
		input.RecurrenceRule = *draft.RecurrenceRule
	}
}
