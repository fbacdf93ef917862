package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
)

// seedSeries creates a recurring parent with 5 occurrence children and
// returns the parent id plus the child ids in occurrence order.
func seedSeries(t *testing.T, repo *fakeRepository) (string, []string) {
	t.Helper()
	ctx := context.Background()

	base := mustTime(t, "2024-05-06T09:00:00Z")
	rule := "FREQ=DAILY"
	parent, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Owner:           "alice",
		Title:           "Series",
		Deadline:        ptrTime(base),
		DurationMinutes: ptrInt(30),
		Recurring:       true,
		RRuleString:     &rule,
	})
	if err != nil {
		t.Fatalf("seed parent: %v", err)
	}

	childIDs := make([]string, 5)
	for i := 0; i < 5; i++ {
		child, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Owner:           "alice",
			Title:           "Series",
			Deadline:        ptrTime(base.AddDate(0, 0, i+1)),
			DurationMinutes: ptrInt(30),
			Recurring:       true,
			ParentTaskID:    &parent.ID,
			OccurrenceIndex: ptrInt(i),
		})
		if err != nil {
			t.Fatalf("seed child %d: %v", i, err)
		}
		childIDs[i] = child.ID
	}
	return parent.ID, childIDs
}

func sameMembers(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	for _, id := range want {
		if !seen[id] {
			return false
		}
	}
	return true
}

func TestResolveScope(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()
	parentID, childIDs := seedSeries(t, repo)

	t.Run("This", func(t *testing.T) {
		got, err := uc.ResolveScope(ctx, childIDs[2], scheduler.ScopeThis)
		if err != nil {
			t.Fatalf("ResolveScope: %v", err)
		}
		if !sameMembers(got, []string{childIDs[2]}) {
			t.Errorf("got %v, want just the target", got)
		}
	})

	t.Run("All covers the whole series", func(t *testing.T) {
		want := append([]string{parentID}, childIDs...)
		got, err := uc.ResolveScope(ctx, parentID, scheduler.ScopeAll)
		if err != nil {
			t.Fatalf("ResolveScope: %v", err)
		}
		if !sameMembers(got, want) {
			t.Errorf("all from parent = %v, want %v", got, want)
		}

		// resolving from a child reaches the same set
		got, err = uc.ResolveScope(ctx, childIDs[3], scheduler.ScopeAll)
		if err != nil {
			t.Fatalf("ResolveScope: %v", err)
		}
		if !sameMembers(got, want) {
			t.Errorf("all from child = %v, want %v", got, want)
		}
	})

	t.Run("Following from a child", func(t *testing.T) {
		got, err := uc.ResolveScope(ctx, childIDs[2], scheduler.ScopeFollowing)
		if err != nil {
			t.Fatalf("ResolveScope: %v", err)
		}
		if !sameMembers(got, []string{childIDs[2], childIDs[3], childIDs[4]}) {
			t.Errorf("following = %v, want indices 2..4", got)
		}

		// following is a strict subset of all
		all, _ := uc.ResolveScope(ctx, childIDs[2], scheduler.ScopeAll)
		if len(got) >= len(all) {
			t.Errorf("following (%d) must be smaller than all (%d)", len(got), len(all))
		}
	})

	t.Run("Following from the parent covers the series", func(t *testing.T) {
		got, err := uc.ResolveScope(ctx, parentID, scheduler.ScopeFollowing)
		if err != nil {
			t.Fatalf("ResolveScope: %v", err)
		}
		if !sameMembers(got, append([]string{parentID}, childIDs...)) {
			t.Errorf("following from parent = %v, want whole series", got)
		}
	})

	t.Run("Non-recurring degenerates", func(t *testing.T) {
		solo, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Owner: "alice", Title: "Solo"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		for _, scope := range []scheduler.Scope{scheduler.ScopeThis, scheduler.ScopeFollowing, scheduler.ScopeAll} {
			got, err := uc.ResolveScope(ctx, solo.ID, scope)
			if err != nil {
				t.Fatalf("ResolveScope(%s): %v", scope, err)
			}
			if !sameMembers(got, []string{solo.ID}) {
				t.Errorf("scope %s = %v, want single member", scope, got)
			}
		}
	})

	t.Run("Unknown task", func(t *testing.T) {
		_, err := uc.ResolveScope(ctx, "missing", scheduler.ScopeAll)
		if !errors.Is(err, scheduler.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Invalid scope", func(t *testing.T) {
		_, err := uc.ResolveScope(ctx, parentID, scheduler.Scope("everything"))
		if !errors.Is(err, scheduler.ErrInvalidScope) {
			t.Errorf("expected ErrInvalidScope, got %v", err)
		}
	})
}

func TestDeleteFollowing(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()
	parentID, childIDs := seedSeries(t, repo)

	out, err := uc.Delete(ctx, childIDs[2], scheduler.ScopeFollowing)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !sameMembers(out.Applied, []string{childIDs[2], childIDs[3], childIDs[4]}) {
		t.Errorf("applied = %v, want indices 2..4", out.Applied)
	}
	if len(out.Failed) != 0 {
		t.Errorf("unexpected failures: %+v", out.Failed)
	}

	// parent and earlier occurrences untouched
	for _, id := range []string{parentID, childIDs[0], childIDs[1]} {
		if task, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id}); task.ID == "" {
			t.Errorf("task %s was deleted, want kept", id)
		}
	}
	for _, id := range []string{childIDs[2], childIDs[3], childIDs[4]} {
		if task, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id}); task.ID != "" {
			t.Errorf("task %s survived, want deleted", id)
		}
	}
}

func TestUpdateAllAppliesEverywhere(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()
	parentID, childIDs := seedSeries(t, repo)

	priority := model.PriorityHigh
	out, err := uc.Update(ctx, scheduler.UpdateTasksInput{
		ID:    parentID,
		Scope: scheduler.ScopeAll,
		Fields: scheduler.UpdateFields{
			Priority: &priority,
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(out.Applied) != 6 {
		t.Fatalf("applied to %d members, want 6", len(out.Applied))
	}

	for _, id := range append([]string{parentID}, childIDs...) {
		task, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
		if task.Priority != model.PriorityHigh {
			t.Errorf("task %s priority = %q, want high", id, task.Priority)
		}
	}
}

func TestUpdatePartialFailure(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()
	parentID, childIDs := seedSeries(t, repo)

	repo.failOn[childIDs[1]] = true

	title := "Renamed"
	out, err := uc.Update(ctx, scheduler.UpdateTasksInput{
		ID:     parentID,
		Scope:  scheduler.ScopeAll,
		Fields: scheduler.UpdateFields{Title: &title},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(out.Resolved) != 6 {
		t.Errorf("resolved %d members, want 6", len(out.Resolved))
	}
	if len(out.Applied) != 5 {
		t.Errorf("applied to %d members, want 5", len(out.Applied))
	}
	if len(out.Failed) != 1 || out.Failed[0].TaskID != childIDs[1] {
		t.Errorf("failed = %+v, want exactly child 1", out.Failed)
	}
}
