package sqlite

import (
	"fmt"
	"strings"
	"time"

	repo "smart-task-scheduler/internal/scheduler/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Owner != "" {
		conditions = append(conditions, "owner = ?")
		args = append(args, opt.Owner)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for
// ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.Owner != "" {
		conditions = append(conditions, "owner = ?")
		args = append(args, opt.Owner)
	}
	if opt.Archived != nil {
		conditions = append(conditions, "archived = ?")
		args = append(args, *opt.Archived)
	}
	if opt.Recurring != nil {
		conditions = append(conditions, "recurring = ?")
		args = append(args, *opt.Recurring)
	}
	if opt.ParentTaskID != nil {
		conditions = append(conditions, "parent_task_id = ?")
		args = append(args, *opt.ParentTaskID)
	}
	if opt.Schedulable {
		conditions = append(conditions, "deadline IS NOT NULL AND duration_minutes IS NOT NULL")
	}
	if opt.DeadlineFrom != nil {
		conditions = append(conditions, "deadline >= ?")
		args = append(args, opt.DeadlineFrom.UTC().Format(time.RFC3339))
	}
	if opt.DeadlineTo != nil {
		conditions = append(conditions, "deadline <= ?")
		args = append(args, opt.DeadlineTo.UTC().Format(time.RFC3339))
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Deadline order keeps occurrence series chronological; NULLs last.
	parts = append(parts, "ORDER BY deadline IS NULL, deadline ASC, created_at ASC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT %d", opt.Limit))
	} else if opt.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET
		parts = append(parts, "LIMIT -1")
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d", opt.Offset))
	}

	return strings.Join(parts, " "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask from the
// non-nil fields of opt. updated_at is always refreshed.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, opt.Deadline.UTC().Format(time.RFC3339))
	}
	if opt.DurationMinutes != nil {
		sets = append(sets, "duration_minutes = ?")
		args = append(args, *opt.DurationMinutes)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*opt.Priority))
	}
	if opt.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *opt.Category)
	}
	if opt.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*opt.Status))
	}
	if opt.Archived != nil {
		sets = append(sets, "archived = ?")
		args = append(args, *opt.Archived)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339Nano))

	return strings.Join(sets, ", "), args
}
