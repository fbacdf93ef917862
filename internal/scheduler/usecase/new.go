package usecase

import (
	"context"
	"time"

	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/gcalendar"
	pkgLog "smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/textclass"
)

// BusyCalendar abstracts the external calendar busy-time source for mocking.
// Optional: a nil client disables calendar lookups.
type BusyCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Options tunes the scheduling algorithms. Zero values fall back to defaults.
type Options struct {
	Timezone               string
	DefaultDurationMinutes int
	WorkdayStartHour       int
	WorkdayEndHour         int
	SlotStepMinutes        int
	SuggestWindowDays      int
	MaxSuggestions         int
	HorizonDays            int
	CalendarID             string
}

func (o *Options) setDefaults() {
	if o.Timezone == "" {
		o.Timezone = "UTC"
	}
	if o.DefaultDurationMinutes <= 0 {
		o.DefaultDurationMinutes = 60
	}
	if o.WorkdayStartHour <= 0 {
		o.WorkdayStartHour = 9
	}
	if o.WorkdayEndHour <= 0 {
		o.WorkdayEndHour = 17
	}
	if o.SlotStepMinutes <= 0 {
		o.SlotStepMinutes = 30
	}
	if o.SuggestWindowDays <= 0 {
		o.SuggestWindowDays = 7
	}
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = 3
	}
	if o.HorizonDays <= 0 {
		o.HorizonDays = 365
	}
}

// implUseCase is the private implementation of scheduler.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	recognizer  *datemath.Recognizer
	priorityCls *textclass.Classifier
	categoryCls *textclass.Classifier
	calendar    BusyCalendar
	opts        Options
	location    *time.Location
}

// New creates a new scheduler UseCase implementation. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	recognizer *datemath.Recognizer,
	priorityCls *textclass.Classifier,
	categoryCls *textclass.Classifier,
	calendar BusyCalendar,
	opts Options,
) *implUseCase {
	opts.setDefaults()

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &implUseCase{
		l:           l,
		repo:        repo,
		recognizer:  recognizer,
		priorityCls: priorityCls,
		categoryCls: categoryCls,
		calendar:    calendar,
		opts:        opts,
		location:    loc,
	}
}

// now is swapped out in tests for deterministic time.
var now = time.Now
