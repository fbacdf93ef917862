package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepository is an in-memory repository.Repository good enough for
// exercising the scheduling flows without a database.
type fakeRepository struct {
	mu     sync.Mutex
	seq    int
	tasks  map[string]model.Task
	failOn map[string]bool // ids whose writes fail, for partial-failure tests
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tasks:  map[string]model.Task{},
		failOn: map[string]bool{},
	}
}

func (f *fakeRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	task := model.Task{
		ID:              fmt.Sprintf("task-%d", f.seq),
		Owner:           opt.Owner,
		Title:           opt.Title,
		Description:     opt.Description,
		Deadline:        opt.Deadline,
		DurationMinutes: opt.DurationMinutes,
		Priority:        opt.Priority,
		Category:        opt.Category,
		Status:          model.StatusPending,
		Recurring:       opt.Recurring,
		ParentTaskID:    opt.ParentTaskID,
		OccurrenceIndex: opt.OccurrenceIndex,
		RRuleString:     opt.RRuleString,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, task := range f.tasks {
		if opt.ID != "" && task.ID != opt.ID {
			continue
		}
		if opt.Owner != "" && task.Owner != opt.Owner {
			continue
		}
		return task, nil
	}
	return model.Task{}, nil
}

func (f *fakeRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var tasks []model.Task
	for _, task := range f.tasks {
		if opt.Owner != "" && task.Owner != opt.Owner {
			continue
		}
		if opt.Archived != nil && task.Archived != *opt.Archived {
			continue
		}
		if opt.Recurring != nil && task.Recurring != *opt.Recurring {
			continue
		}
		if opt.ParentTaskID != nil && (task.ParentTaskID == nil || *task.ParentTaskID != *opt.ParentTaskID) {
			continue
		}
		if opt.Schedulable && !task.Schedulable() {
			continue
		}
		if opt.DeadlineFrom != nil && (task.Deadline == nil || task.Deadline.Before(*opt.DeadlineFrom)) {
			continue
		}
		if opt.DeadlineTo != nil && (task.Deadline == nil || task.Deadline.After(*opt.DeadlineTo)) {
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i].Deadline, tasks[j].Deadline
		switch {
		case a == nil && b == nil:
			return tasks[i].ID < tasks[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	if opt.Offset > 0 && opt.Offset < len(tasks) {
		tasks = tasks[opt.Offset:]
	} else if opt.Offset >= len(tasks) {
		tasks = nil
	}
	if opt.Limit > 0 && opt.Limit < len(tasks) {
		tasks = tasks[:opt.Limit]
	}
	return tasks, nil
}

func (f *fakeRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failOn[opt.ID] {
		return model.Task{}, repository.ErrFailedToUpdate
	}

	task, ok := f.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Title != nil {
		task.Title = *opt.Title
	}
	if opt.Description != nil {
		task.Description = *opt.Description
	}
	if opt.Deadline != nil {
		task.Deadline = opt.Deadline
	}
	if opt.DurationMinutes != nil {
		task.DurationMinutes = opt.DurationMinutes
	}
	if opt.Priority != nil {
		task.Priority = *opt.Priority
	}
	if opt.Category != nil {
		task.Category = *opt.Category
	}
	if opt.Status != nil {
		task.Status = *opt.Status
	}
	if opt.Archived != nil {
		task.Archived = *opt.Archived
	}
	task.UpdatedAt = time.Now()
	f.tasks[opt.ID] = task
	return task, nil
}

func (f *fakeRepository) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failOn[id] {
		return repository.ErrFailedToDelete
	}
	delete(f.tasks, id)
	return nil
}

// fakeCalendar serves a fixed event list.
type fakeCalendar struct {
	events []gcalendar.Event
	err    error
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return f.events, f.err
}
