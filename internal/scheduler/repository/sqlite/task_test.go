package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/scheduler/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return New(db, nopLogger{})
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(i int) *int              { return &i }
func ptrStr(s string) *string        { return &s }

func TestCreateAndGetTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Date(2024, 5, 6, 14, 0, 0, 0, time.UTC)
	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		Owner:           "alice",
		Title:           "Call dentist",
		Description:     "annual checkup",
		Deadline:        ptrTime(deadline),
		DurationMinutes: ptrInt(30),
		Priority:        model.PriorityMedium,
		Category:        "health",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Status != model.StatusPending {
		t.Errorf("new task status = %q, want pending", created.Status)
	}

	got, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.Title != "Call dentist" || got.Owner != "alice" {
		t.Errorf("unexpected task %+v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("deadline got %v, want %v", got.Deadline, deadline)
	}
	if got.DurationMinutes == nil || *got.DurationMinutes != 30 {
		t.Errorf("duration got %v, want 30", got.DurationMinutes)
	}
}

func TestGetOneTaskNotFound(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.GetOneTask(context.Background(), repo.GetOneTaskOptions{ID: "missing"})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero-value task, got %+v", got)
	}
}

func TestListTasksFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	parent, _ := r.CreateTask(ctx, repo.CreateTaskOptions{
		Owner: "alice", Title: "Series parent", Recurring: true,
		Deadline: ptrTime(base), DurationMinutes: ptrInt(60),
	})
	for i := 0; i < 3; i++ {
		d := base.AddDate(0, 0, i+1)
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{
			Owner: "alice", Title: "Occurrence", Recurring: true,
			Deadline: ptrTime(d), DurationMinutes: ptrInt(60),
			ParentTaskID: ptrStr(parent.ID), OccurrenceIndex: ptrInt(i),
		}); err != nil {
			t.Fatalf("create occurrence %d: %v", i, err)
		}
	}
	// unrelated owner and unscheduled task
	r.CreateTask(ctx, repo.CreateTaskOptions{Owner: "bob", Title: "Other"})
	r.CreateTask(ctx, repo.CreateTaskOptions{Owner: "alice", Title: "Someday"})

	t.Run("By owner", func(t *testing.T) {
		tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{Owner: "alice"})
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		if len(tasks) != 5 {
			t.Errorf("got %d tasks, want 5", len(tasks))
		}
	})

	t.Run("By parent", func(t *testing.T) {
		tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{ParentTaskID: ptrStr(parent.ID)})
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		if len(tasks) != 3 {
			t.Fatalf("got %d occurrences, want 3", len(tasks))
		}
		// chronological deadline order
		for i := 1; i < len(tasks); i++ {
			if tasks[i].Deadline.Before(*tasks[i-1].Deadline) {
				t.Errorf("occurrences out of deadline order")
			}
		}
	})

	t.Run("Schedulable only", func(t *testing.T) {
		tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{Owner: "alice", Schedulable: true})
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		if len(tasks) != 4 {
			t.Errorf("got %d schedulable tasks, want 4", len(tasks))
		}
	})

	t.Run("Deadline range", func(t *testing.T) {
		from := base.AddDate(0, 0, 1)
		to := base.AddDate(0, 0, 2)
		tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{
			Owner: "alice", DeadlineFrom: &from, DeadlineTo: &to,
		})
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("got %d tasks in range, want 2", len(tasks))
		}
	})
}

func TestUpdateTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, _ := r.CreateTask(ctx, repo.CreateTaskOptions{
		Owner: "alice", Title: "Draft", Priority: model.PriorityMedium,
	})

	status := model.StatusCompleted
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:     created.ID,
		Title:  ptrStr("Final"),
		Status: &status,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "Final" {
		t.Errorf("title got %q, want Final", updated.Title)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("status got %q, want completed", updated.Status)
	}
	// untouched fields survive
	if updated.Owner != "alice" || updated.Priority != model.PriorityMedium {
		t.Errorf("unexpected field changes: %+v", updated)
	}
}

func TestDeleteTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, _ := r.CreateTask(ctx, repo.CreateTaskOptions{Owner: "alice", Title: "Doomed"})

	if err := r.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	got, _ := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: created.ID})
	if got.ID != "" {
		t.Errorf("task still present after delete: %+v", got)
	}
}
