package usecase

import (
	"context"
	"sort"
	"time"

	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/interval"
)

// SuggestSlots scans working hours for free intervals large enough for the
// requested duration. Candidates start tomorrow; confidence decays 0.1 per
// day so nearer slots rank first.
func (uc *implUseCase) SuggestSlots(ctx context.Context, input scheduler.SuggestSlotsInput) ([]scheduler.SlotSuggestion, error) {
	if input.Owner == "" {
		return nil, scheduler.ErrOwnerRequired
	}
	if input.DurationMinutes < interval.MinDurationMinutes || input.DurationMinutes > interval.MaxDurationMinutes {
		return nil, scheduler.ErrInvalidDuration
	}

	windowDays := input.WindowDays
	if windowDays <= 0 {
		windowDays = uc.opts.SuggestWindowDays
	}

	firstDay := uc.startOfDay(now().In(uc.location)).AddDate(0, 0, 1)
	windowEnd := firstDay.AddDate(0, 0, windowDays)

	busy, err := uc.busyIntervals(ctx, input.Owner, firstDay, windowEnd)
	if err != nil {
		return nil, err
	}

	step := time.Duration(uc.opts.SlotStepMinutes) * time.Minute
	span := time.Duration(input.DurationMinutes) * time.Minute

	var suggestions []scheduler.SlotSuggestion
	for day := 0; day < windowDays; day++ {
		date := firstDay.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		dayStart := date.Add(time.Duration(uc.opts.WorkdayStartHour) * time.Hour)
		dayEnd := date.Add(time.Duration(uc.opts.WorkdayEndHour) * time.Hour)
		confidence := 0.8 - 0.1*float64(day)
		if confidence < 0.1 {
			confidence = 0.1
		}

		for start := dayStart; !start.Add(span).After(dayEnd); start = start.Add(step) {
			candidate := interval.Interval{Start: start, DurationMinutes: input.DurationMinutes}
			if overlapsAny(candidate, busy) {
				continue
			}
			suggestions = append(suggestions, scheduler.SlotSuggestion{
				Start:           candidate.Start,
				End:             candidate.End(),
				DurationMinutes: candidate.DurationMinutes,
				Confidence:      confidence,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].Start.Before(suggestions[j].Start)
	})

	if len(suggestions) > uc.opts.MaxSuggestions {
		suggestions = suggestions[:uc.opts.MaxSuggestions]
	}
	return suggestions, nil
}

// busyIntervals collects the owner's scheduled tasks plus external calendar
// events inside the window.
func (uc *implUseCase) busyIntervals(ctx context.Context, owner string, from, until time.Time) ([]interval.Interval, error) {
	archived := false
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Owner:       owner,
		Archived:    &archived,
		Schedulable: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SuggestSlots ListTasks: %v", err)
		return nil, err
	}

	var busy []interval.Interval
	for _, task := range tasks {
		if iv, ok := task.Interval(); ok {
			busy = append(busy, iv)
		}
	}

	events, err := uc.busyEvents(ctx, from, until)
	if err != nil {
		uc.l.Warnf(ctx, "uc.SuggestSlots calendar lookup failed: %v", err)
		return busy, nil
	}
	for _, ev := range events {
		span := ev.EndTime.Sub(ev.StartTime)
		if span <= 0 {
			continue
		}
		busy = append(busy, interval.Interval{
			Start:           ev.StartTime,
			DurationMinutes: int(span / time.Minute),
		})
	}
	return busy, nil
}

func (uc *implUseCase) busyEvents(ctx context.Context, from, until time.Time) ([]gcalendar.Event, error) {
	if uc.calendar == nil {
		return nil, nil
	}
	return uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.opts.CalendarID,
		TimeMin:    from,
		TimeMax:    until,
	})
}

func overlapsAny(candidate interval.Interval, busy []interval.Interval) bool {
	for _, iv := range busy {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

func (uc *implUseCase) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.location)
}
