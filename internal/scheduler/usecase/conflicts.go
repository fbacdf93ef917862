package usecase

import (
	"context"
	"sort"
	"time"

	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/internal/scheduler/repository"
	"smart-task-scheduler/pkg/interval"
)

// DetectConflicts returns every existing commitment of the owner that
// overlaps the proposed interval. Touching boundaries do not conflict.
func (uc *implUseCase) DetectConflicts(ctx context.Context, input scheduler.DetectConflictsInput) ([]scheduler.ConflictReport, error) {
	if input.Owner == "" {
		return nil, scheduler.ErrOwnerRequired
	}

	proposed, err := interval.New(input.Start, input.DurationMinutes)
	if err != nil {
		return nil, scheduler.ErrInvalidDuration
	}

	conflicts, err := uc.taskConflicts(ctx, input.Owner, proposed)
	if err != nil {
		return nil, err
	}

	calConflicts, err := uc.calendarConflicts(ctx, proposed)
	if err != nil {
		// the external calendar being down must not block scheduling
		uc.l.Warnf(ctx, "uc.DetectConflicts calendar lookup failed: %v", err)
	} else {
		conflicts = append(conflicts, calConflicts...)
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Start.Before(conflicts[j].Start)
	})
	return conflicts, nil
}

func (uc *implUseCase) taskConflicts(ctx context.Context, owner string, proposed interval.Interval) ([]scheduler.ConflictReport, error) {
	archived := false
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Owner:       owner,
		Archived:    &archived,
		Schedulable: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetectConflicts ListTasks: %v", err)
		return nil, err
	}

	var conflicts []scheduler.ConflictReport
	for _, task := range tasks {
		iv, ok := task.Interval()
		if !ok || !iv.Overlaps(proposed) {
			continue
		}
		conflicts = append(conflicts, scheduler.ConflictReport{
			TaskID:          task.ID,
			Title:           task.Title,
			Start:           iv.Start,
			End:             iv.End(),
			DurationMinutes: iv.DurationMinutes,
			Priority:        task.Priority,
			Source:          scheduler.ConflictSourceTask,
		})
	}
	return conflicts, nil
}

// calendarConflicts checks the optional external calendar. A nil client
// contributes nothing.
func (uc *implUseCase) calendarConflicts(ctx context.Context, proposed interval.Interval) ([]scheduler.ConflictReport, error) {
	events, err := uc.busyEvents(ctx, proposed.Start, proposed.End())
	if err != nil {
		return nil, err
	}

	var conflicts []scheduler.ConflictReport
	for _, ev := range events {
		span := ev.EndTime.Sub(ev.StartTime)
		if span <= 0 {
			continue
		}
		iv := interval.Interval{Start: ev.StartTime, DurationMinutes: int(span / time.Minute)}
		if !iv.Overlaps(proposed) {
			continue
		}
		conflicts = append(conflicts, scheduler.ConflictReport{
			Title:           ev.Summary,
			Start:           ev.StartTime,
			End:             ev.EndTime,
			DurationMinutes: iv.DurationMinutes,
			Source:          scheduler.ConflictSourceCalendar,
		})
	}
	return conflicts, nil
}
