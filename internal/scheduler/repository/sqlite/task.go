package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/scheduler/repository"
)

const taskColumns = `id, owner, title, description, deadline, duration_minutes,
	priority, category, status, archived, recurring,
	parent_task_id, occurrence_index, rrule_string, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	task := model.Task{
		ID:              uuid.New().String(),
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
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Owner, task.Title, task.Description,
		timeToDB(task.Deadline), nullableInt(task.DurationMinutes),
		string(task.Priority), task.Category, string(task.Status),
		task.Archived, task.Recurring,
		nullableString(task.ParentTaskID), nullableInt(task.OccurrenceIndex),
		nullableString(task.RRuleString),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — not-found is not an error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns all Tasks matching the filters, ordered by deadline then
// creation time.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of opt to the Task and returns the
// updated entity. Returns zero-value Task when the id does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", sets)
	args = append(args, opt.ID)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// --- row mapping helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task            model.Task
		deadline        sql.NullString
		duration        sql.NullInt64
		priority        string
		status          string
		parentID        sql.NullString
		occurrenceIndex sql.NullInt64
		rruleString     sql.NullString
		createdAt       string
		updatedAt       string
	)

	err := row.Scan(
		&task.ID, &task.Owner, &task.Title, &task.Description,
		&deadline, &duration, &priority, &task.Category, &status,
		&task.Archived, &task.Recurring,
		&parentID, &occurrenceIndex, &rruleString,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Priority = model.Priority(priority)
	task.Status = model.Status(status)

	if deadline.Valid {
		t, err := time.Parse(time.RFC3339Nano, deadline.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("bad deadline %q: %w", deadline.String, err)
		}
		task.Deadline = &t
	}
	if duration.Valid {
		d := int(duration.Int64)
		task.DurationMinutes = &d
	}
	if parentID.Valid {
		task.ParentTaskID = &parentID.String
	}
	if occurrenceIndex.Valid {
		i := int(occurrenceIndex.Int64)
		task.OccurrenceIndex = &i
	}
	if rruleString.Valid {
		task.RRuleString = &rruleString.String
	}

	if task.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	if task.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("bad updated_at %q: %w", updatedAt, err)
	}

	return task, nil
}

// timeToDB stores deadlines as fixed-width RFC3339 UTC so that string
// comparison in SQL matches chronological order.
func timeToDB(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
