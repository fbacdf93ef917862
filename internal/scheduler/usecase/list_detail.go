package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
)

// List returns the owner's tasks, newest deadline ordering delegated to the
// store. Archived tasks are hidden unless asked for.
func (uc *implUseCase) List(ctx context.Context, input scheduler.ListTasksInput) (scheduler.ListTasksOutput, error) {
	if input.Owner == "" {
		return scheduler.ListTasksOutput{}, scheduler.ErrOwnerRequired
	}

	opts := repository.ListTasksOptions{
		Owner:  input.Owner,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if !input.IncludeArchived {
		archived := false
		opts.Archived = &archived
	}

	tasks, err := uc.repo.ListTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return scheduler.ListTasksOutput{}, err
	}

	return scheduler.ListTasksOutput{
		Tasks:  tasks,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	task, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == "" {
		return model.Task{}, scheduler.ErrTaskNotFound
	}
	return task, nil
}
