package usecase

import (
	"context"
	"errors"
	"testing"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
)

func TestMaterializeWeeklySeries(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	// Monday anchor, two-week horizon
	start := mustTime(t, "2024-05-06T09:00:00Z")
	parent := model.Task{
		ID:              "parent-1",
		Owner:           "alice",
		Title:           "Standup",
		Deadline:        &start,
		DurationMinutes: ptrInt(15),
		Priority:        model.PriorityMedium,
		Category:        "work",
	}

	out, err := uc.Materialize(ctx, scheduler.MaterializeInput{
		Owner:   "alice",
		Parent:  parent,
		RRule:   "FREQ=WEEKLY;BYDAY=MO,WE,FR",
		Horizon: ptrTime(start.AddDate(0, 0, 13)),
	})
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(out.Failed) != 0 {
		t.Fatalf("unexpected failures: %+v", out.Failed)
	}
	if len(out.Occurrences) != 6 {
		t.Fatalf("got %d occurrences, want 6", len(out.Occurrences))
	}

	wantDays := []int{6, 8, 10, 13, 15, 17}
	for i, occ := range out.Occurrences {
		if occ.OccurrenceIndex == nil || *occ.OccurrenceIndex != i {
			t.Errorf("occurrence[%d].OccurrenceIndex = %v, want %d", i, occ.OccurrenceIndex, i)
		}
		if occ.ParentTaskID == nil || *occ.ParentTaskID != parent.ID {
			t.Errorf("occurrence[%d].ParentTaskID = %v, want %q", i, occ.ParentTaskID, parent.ID)
		}
		if !occ.Recurring {
			t.Errorf("occurrence[%d] not marked recurring", i)
		}
		if occ.Deadline == nil || occ.Deadline.Day() != wantDays[i] {
			t.Errorf("occurrence[%d].Deadline = %v, want day %d", i, occ.Deadline, wantDays[i])
		}
		if occ.Title != parent.Title || occ.Category != parent.Category {
			t.Errorf("occurrence[%d] lost parent fields: %+v", i, occ)
		}
		if occ.RRuleString == nil || *occ.RRuleString != "FREQ=WEEKLY;BYDAY=MO,WE,FR" {
			t.Errorf("occurrence[%d].RRuleString = %v, want the series rule", i, occ.RRuleString)
		}
		if i > 0 && occ.Deadline.Before(*out.Occurrences[i-1].Deadline) {
			t.Errorf("occurrences out of chronological order at %d", i)
		}
	}
}

func TestMaterializeMalformedRule(t *testing.T) {
	uc := newTestUseCase(t, newFakeRepository(), nil)

	_, err := uc.Materialize(context.Background(), scheduler.MaterializeInput{
		Owner:  "alice",
		Parent: model.Task{ID: "parent-1", Title: "Broken"},
		RRule:  "FREQ=SOMETIMES",
	})
	if !errors.Is(err, scheduler.ErrInvalidRecurrence) {
		t.Errorf("expected ErrInvalidRecurrence, got %v", err)
	}
}

func TestCreateWithRecurrence(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	start := mustTime(t, "2024-05-06T09:00:00Z")
	out, err := uc.Create(ctx, scheduler.CreateTaskInput{
		Owner:           "alice",
		Title:           "Standup",
		Deadline:        &start,
		DurationMinutes: ptrInt(15),
		RecurrenceRule:  "FREQ=WEEKLY;BYDAY=MO,WE,FR",
		Horizon:         ptrTime(start.AddDate(0, 0, 13)),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task == nil {
		t.Fatalf("expected created parent task")
	}
	if !out.Task.Recurring || out.Task.RRuleString == nil {
		t.Errorf("parent not marked recurring: %+v", out.Task)
	}
	if len(out.Occurrences) != 6 {
		t.Errorf("got %d occurrences, want 6", len(out.Occurrences))
	}
	if out.ExpansionError != "" {
		t.Errorf("unexpected expansion error %q", out.ExpansionError)
	}
}

func TestCreateKeepsParentOnBadRule(t *testing.T) {
	freezeNow(t, mustTime(t, "2024-05-06T08:00:00Z"))
	repo := newFakeRepository()
	uc := newTestUseCase(t, repo, nil)
	ctx := context.Background()

	out, err := uc.Create(ctx, scheduler.CreateTaskInput{
		Owner:          "alice",
		Title:          "Broken series",
		RecurrenceRule: "FREQ=SOMETIMES",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task == nil {
		t.Fatalf("parent must survive a failed expansion")
	}
	if out.ExpansionError == "" {
		t.Errorf("expected expansion error to be reported")
	}
	if len(out.Occurrences) != 0 {
		t.Errorf("got %d occurrences, want 0", len(out.Occurrences))
	}

	stored, err := uc.Detail(ctx, out.Task.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if stored.Title != "Broken series" {
		t.Errorf("stored parent = %+v", stored)
	}
}
