package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
)

func TestCreateFromText(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Create(context.Background(), scheduler.CreateTaskInput{
		Owner: "alice",
		Text:  "Call dentist tomorrow at 2pm for 30 minutes",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task == nil {
		t.Fatalf("expected created task")
	}
	if out.Draft == nil {
		t.Errorf("expected parse draft in output")
	}
	if !strings.HasPrefix(out.Task.Title, "Call dentist") {
		t.Errorf("title = %q, want prefix Call dentist", out.Task.Title)
	}
	want := mustTime(t, "2024-05-07T14:00:00Z")
	if out.Task.Deadline == nil || !out.Task.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", out.Task.Deadline, want)
	}
	if out.Task.DurationMinutes == nil || *out.Task.DurationMinutes != 30 {
		t.Errorf("duration = %v, want 30", out.Task.DurationMinutes)
	}
}

func TestCreateHonorsParserContext(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	uc := newTestUseCase(t, newFakeRepository(), nil)

	out, err := uc.Create(context.Background(), scheduler.CreateTaskInput{
		Owner:                  "alice",
		Text:                   "Call mom tomorrow at 2pm",
		Timezone:               "America/New_York",
		DefaultDurationMinutes: 45,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task == nil {
		t.Fatalf("expected created task")
	}

	// 2pm Eastern, not 2pm UTC
	want := mustTime(t, "2024-05-07T18:00:00Z")
	if out.Task.Deadline == nil || !out.Task.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", out.Task.Deadline, want)
	}
	if out.Task.DurationMinutes == nil || *out.Task.DurationMinutes != 45 {
		t.Errorf("duration = %v, want the request default 45", out.Task.DurationMinutes)
	}
}

func TestCreateExplicitFieldsWinOverText(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	uc := newTestUseCase(t, newFakeRepository(), nil)

	out, err := uc.Create(context.Background(), scheduler.CreateTaskInput{
		Owner: "alice",
		Text:  "Call dentist tomorrow at 2pm for 30 minutes",
		Title: "Dentist appointment",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task.Title != "Dentist appointment" {
		t.Errorf("title = %q, explicit title must win", out.Task.Title)
	}
}

func TestCreateBlockedByConflict(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Owner:           "alice",
		Title:           "Design review",
		Deadline:        ptrTime(mustTime(t, "2024-05-07T14:00:00Z")),
		DurationMinutes: ptrInt(60),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := uc.Create(ctx, scheduler.CreateTaskInput{
		Owner:           "alice",
		Title:           "Overlapping call",
		Deadline:        ptrTime(mustTime(t, "2024-05-07T14:30:00Z")),
		DurationMinutes: ptrInt(30),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task != nil {
		t.Errorf("task must not be created when conflicting, got %+v", out.Task)
	}
	if len(out.Conflicts) != 1 {
		t.Errorf("got %d conflicts, want 1", len(out.Conflicts))
	}
	if len(out.Suggestions) == 0 {
		t.Errorf("expected alternative slot suggestions")
	}

	// only the seeded task remains
	tasks, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Owner: "alice"})
	if len(tasks) != 1 {
		t.Errorf("store holds %d tasks, want 1", len(tasks))
	}
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(t, newFakeRepository(), nil)
	ctx := context.Background()

	t.Run("Missing owner", func(t *testing.T) {
		_, err := uc.Create(ctx, scheduler.CreateTaskInput{Title: "X"})
		if !errors.Is(err, scheduler.ErrOwnerRequired) {
			t.Errorf("expected ErrOwnerRequired, got %v", err)
		}
	})

	t.Run("Nothing to create", func(t *testing.T) {
		_, err := uc.Create(ctx, scheduler.CreateTaskInput{Owner: "alice"})
		if !errors.Is(err, scheduler.ErrNothingToCreate) {
			t.Errorf("expected ErrNothingToCreate, got %v", err)
		}
	})

	t.Run("Bad priority", func(t *testing.T) {
		_, err := uc.Create(ctx, scheduler.CreateTaskInput{Owner: "alice", Title: "X", Priority: "mega"})
		if !errors.Is(err, scheduler.ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Bad duration", func(t *testing.T) {
		_, err := uc.Create(ctx, scheduler.CreateTaskInput{Owner: "alice", Title: "X", DurationMinutes: ptrInt(0)})
		if !errors.Is(err, scheduler.ErrInvalidDuration) {
			t.Errorf("expected ErrInvalidDuration, got %v", err)
		}
	})
}

func TestListAndDetail(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Owner: "alice", Title: "Visible"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	archived, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Owner: "alice", Title: "Hidden"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	flag := true
	if _, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: archived.ID, Archived: &flag}); err != nil {
		t.Fatalf("archive: %v", err)
	}

	t.Run("List hides archived", func(t *testing.T) {
		out, err := uc.List(ctx, scheduler.ListTasksInput{Owner: "alice"})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != created.ID {
			t.Errorf("tasks = %+v, want only the visible one", out.Tasks)
		}
	})

	t.Run("List includes archived on request", func(t *testing.T) {
		out, err := uc.List(ctx, scheduler.ListTasksInput{Owner: "alice", IncludeArchived: true})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Errorf("got %d tasks, want 2", len(out.Tasks))
		}
	})

	t.Run("Detail", func(t *testing.T) {
		task, err := uc.Detail(ctx, created.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if task.Title != "Visible" {
			t.Errorf("task = %+v", task)
		}
	})

	t.Run("Detail not found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "missing")
		if !errors.Is(err, scheduler.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}
