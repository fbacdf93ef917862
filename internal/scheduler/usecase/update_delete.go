package usecase

import (
	"context"

	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
)

// Update applies the same field changes to every member resolved by the
// scope. Members that fail are reported; successes are never rolled back, so
// a retry with the same input is idempotent per member.
func (uc *implUseCase) Update(ctx context.Context, input scheduler.UpdateTasksInput) (scheduler.MutationOutput, error) {
	if input.Fields.Priority != nil && !input.Fields.Priority.Valid() {
		return scheduler.MutationOutput{}, scheduler.ErrInvalidPriority
	}

	members, err := uc.ResolveScope(ctx, input.ID, input.Scope)
	if err != nil {
		return scheduler.MutationOutput{}, err
	}

	out := scheduler.MutationOutput{Resolved: members}
	for _, id := range members {
		_, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
			ID:              id,
			Title:           input.Fields.Title,
			Description:     input.Fields.Description,
			Deadline:        input.Fields.Deadline,
			DurationMinutes: input.Fields.DurationMinutes,
			Priority:        input.Fields.Priority,
			Category:        input.Fields.Category,
			Status:          input.Fields.Status,
			Archived:        input.Fields.Archived,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update member %s: %v", id, err)
			out.Failed = append(out.Failed, scheduler.MemberError{TaskID: id, Err: err.Error()})
			continue
		}
		out.Applied = append(out.Applied, id)
	}
	return out, nil
}

// Delete removes every member resolved by the scope, reporting partial
// failures the same way Update does.
func (uc *implUseCase) Delete(ctx context.Context, id string, scope scheduler.Scope) (scheduler.MutationOutput, error) {
	members, err := uc.ResolveScope(ctx, id, scope)
	if err != nil {
		return scheduler.MutationOutput{}, err
	}

	out := scheduler.MutationOutput{Resolved: members}
	for _, memberID := range members {
		if err := uc.repo.DeleteTask(ctx, memberID); err != nil {
			uc.l.Errorf(ctx, "uc.Delete member %s: %v", memberID, err)
			out.Failed = append(out.Failed, scheduler.MemberError{TaskID: memberID, Err: err.Error()})
			continue
		}
		out.Applied = append(out.Applied, memberID)
	}
	return out, nil
}
