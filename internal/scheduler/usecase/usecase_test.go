package usecase

import (
	"testing"
	"time"

	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/textclass"
)

func newTestUseCase(t *testing.T, repo repository.Repository, calendar BusyCalendar) *implUseCase {
	t.Helper()

	recognizer, err := datemath.NewRecognizer("UTC")
	if err != nil {
		t.Fatalf("recognizer: %v", err)
	}
	priorityCls, err := textclass.New(textclass.DefaultPriority, textclass.PriorityCorpus)
	if err != nil {
		t.Fatalf("priority classifier: %v", err)
	}
	categoryCls, err := textclass.New(textclass.DefaultCategory, textclass.CategoryCorpus)
	if err != nil {
		t.Fatalf("category classifier: %v", err)
	}

	return New(mockLogger{}, repo, recognizer, priorityCls, categoryCls, calendar, Options{})
}

// freezeNow pins the package clock for the duration of a test.
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad time %q: %v", value, err)
	}
	return ts
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(i int) *int              { return &i }
