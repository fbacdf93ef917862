package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
)

// ResolveScope partitions a recurring series into the member ids affected by
// a scoped mutation. It only partitions existing tasks, never inventing
// occurrences. Non-recurring targets degenerate to a single-member set for
// every scope.
func (uc *implUseCase) ResolveScope(ctx context.Context, taskID string, scope scheduler.Scope) ([]string, error) {
	if !scope.Valid() {
		return nil, scheduler.ErrInvalidScope
	}

	task, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResolveScope GetOneTask: %v", err)
		return nil, err
	}
	if task.ID == "" {
		return nil, scheduler.ErrTaskNotFound
	}

	if scope == scheduler.ScopeThis || !task.Recurring {
		return []string{task.ID}, nil
	}

	parentID := task.ID
	isParent := true
	if task.ParentTaskID != nil {
		parentID = *task.ParentTaskID
		isParent = false
	}

	children, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{ParentTaskID: &parentID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ResolveScope ListTasks: %v", err)
		return nil, err
	}

	switch scope {
	case scheduler.ScopeAll:
		members := []string{parentID}
		for _, child := range children {
			members = append(members, child.ID)
		}
		return members, nil

	case scheduler.ScopeFollowing:
		// the parent precedes every occurrence, so "following" from the
		// parent covers the entire series
		if isParent {
			members := []string{parentID}
			for _, child := range children {
				members = append(members, child.ID)
			}
			return members, nil
		}

		members := []string{task.ID}
		for _, child := range children {
			if child.ID == task.ID {
				continue
			}
			if occurrenceIndex(child) >= occurrenceIndex(task) {
				members = append(members, child.ID)
			}
		}
		return members, nil
	}

	return nil, scheduler.ErrInvalidScope
}

func occurrenceIndex(t model.Task) int {
	if t.OccurrenceIndex == nil {
		return 0
	}
	return *t.OccurrenceIndex
}
