package http

import (
	"time"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduler"
)

// --- Request DTOs ---

type createReq struct {
	Owner string `json:"owner" binding:"required"`
	Text  string `json:"text"  binding:"max=2000"`

	Timezone               string `json:"timezone" binding:"max=64"`
	DefaultDurationMinutes int    `json:"default_duration_minutes" binding:"omitempty,min=1,max=10080"`

	Title           string     `json:"title"            binding:"max=255"`
	Description     string     `json:"description"      binding:"max=1000"`
	Deadline        *time.Time `json:"deadline"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1,max=10080"`
	Priority        string     `json:"priority"         binding:"omitempty,oneof=low medium high urgent"`
	Category        string     `json:"category"         binding:"max=64"`
	RecurrenceRule  string     `json:"recurrence_rule"  binding:"max=255"`
	Horizon         *time.Time `json:"horizon"`
}

func (r createReq) toInput() scheduler.CreateTaskInput {
	return scheduler.CreateTaskInput{
		Owner:                  r.Owner,
		Text:                   r.Text,
		Timezone:               r.Timezone,
		DefaultDurationMinutes: r.DefaultDurationMinutes,

		Title:           r.Title,
		Description:     r.Description,
		Deadline:        r.Deadline,
		DurationMinutes: r.DurationMinutes,
		Priority:        model.Priority(r.Priority),
		Category:        r.Category,
		RecurrenceRule:  r.RecurrenceRule,
		Horizon:         r.Horizon,
	}
}

type parseReq struct {
	Owner                  string `json:"owner"    binding:"required"`
	Text                   string `json:"text"     binding:"required,max=2000"`
	Timezone               string `json:"timezone" binding:"max=64"`
	Locale                 string `json:"locale"   binding:"max=16"`
	DefaultDurationMinutes int    `json:"default_duration_minutes" binding:"omitempty,min=1,max=10080"`
}

func (r parseReq) toInput() scheduler.ParseInput {
	return scheduler.ParseInput{
		Text: r.Text,
		Context: scheduler.ParseContext{
			Owner:                  r.Owner,
			Timezone:               r.Timezone,
			Locale:                 r.Locale,
			DefaultDurationMinutes: r.DefaultDurationMinutes,
		},
	}
}

type conflictsReq struct {
	Owner           string    `form:"owner"            binding:"required"`
	Start           time.Time `form:"start"            binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	DurationMinutes int       `form:"duration_minutes" binding:"required,min=1,max=10080"`
}

func (r conflictsReq) toInput() scheduler.DetectConflictsInput {
	return scheduler.DetectConflictsInput{
		Owner:           r.Owner,
		Start:           r.Start,
		DurationMinutes: r.DurationMinutes,
	}
}

type slotsReq struct {
	Owner           string `form:"owner"            binding:"required"`
	DurationMinutes int    `form:"duration_minutes" binding:"required,min=1,max=10080"`
	WindowDays      int    `form:"window_days"      binding:"omitempty,min=1,max=90"`
}

func (r slotsReq) toInput() scheduler.SuggestSlotsInput {
	return scheduler.SuggestSlotsInput{
		Owner:           r.Owner,
		DurationMinutes: r.DurationMinutes,
		WindowDays:      r.WindowDays,
	}
}

type listReq struct {
	Owner           string `form:"owner" binding:"required"`
	IncludeArchived bool   `form:"include_archived"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

func (r listReq) toInput() scheduler.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return scheduler.ListTasksInput{
		Owner:           r.Owner,
		IncludeArchived: r.IncludeArchived,
		Limit:           limit,
		Offset:          r.Offset,
	}
}

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Scope string `json:"-"` // populated from query param

	Title           *string    `json:"title"            binding:"omitempty,min=1,max=255"`
	Description     *string    `json:"description"      binding:"omitempty,max=1000"`
	Deadline        *time.Time `json:"deadline"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1,max=10080"`
	Priority        *string    `json:"priority"         binding:"omitempty,oneof=low medium high urgent"`
	Category        *string    `json:"category"         binding:"omitempty,max=64"`
	Status          *string    `json:"status"           binding:"omitempty,oneof=pending completed"`
	Archived        *bool      `json:"archived"`
}

func (r updateReq) toInput() scheduler.UpdateTasksInput {
	fields := scheduler.UpdateFields{
		Title:           r.Title,
		Description:     r.Description,
		Deadline:        r.Deadline,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		Archived:        r.Archived,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		fields.Priority = &p
	}
	if r.Status != nil {
		s := model.Status(*r.Status)
		fields.Status = &s
	}
	return scheduler.UpdateTasksInput{
		ID:     r.ID,
		Scope:  scheduler.Scope(r.Scope),
		Fields: fields,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Owner           string     `json:"owner"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Priority        string     `json:"priority"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	Archived        bool       `json:"archived"`
	Recurring       bool       `json:"recurring"`
	ParentTaskID    *string    `json:"parent_task_id,omitempty"`
	OccurrenceIndex *int       `json:"occurrence_index,omitempty"`
	RecurrenceRule  *string    `json:"recurrence_rule,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:              task.ID,
		Owner:           task.Owner,
		Title:           task.Title,
		Description:     task.Description,
		Deadline:        task.Deadline,
		DurationMinutes: task.DurationMinutes,
		Priority:        string(task.Priority),
		Category:        task.Category,
		Status:          string(task.Status),
		Archived:        task.Archived,
		Recurring:       task.Recurring,
		ParentTaskID:    task.ParentTaskID,
		OccurrenceIndex: task.OccurrenceIndex,
		RecurrenceRule:  task.RRuleString,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

type draftResp struct {
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Priority        string     `json:"priority"`
	Category        string     `json:"category"`
	RecurrenceRule  *string    `json:"recurrence_rule,omitempty"`
	Confidence      float64    `json:"confidence"`
	SourceText      string     `json:"source_text"`
}

func newDraftResp(draft scheduler.TaskDraft) draftResp {
	return draftResp{
		Title:           draft.Title,
		Description:     draft.Description,
		Deadline:        draft.Deadline,
		DurationMinutes: draft.DurationMinutes,
		Priority:        string(draft.Priority),
		Category:        draft.Category,
		RecurrenceRule:  draft.RecurrenceRule,
		Confidence:      draft.Confidence,
		SourceText:      draft.SourceText,
	}
}

type conflictResp struct {
	TaskID          string    `json:"task_id,omitempty"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Priority        string    `json:"priority,omitempty"`
	Source          string    `json:"source"`
}

func newConflictResps(conflicts []scheduler.ConflictReport) []conflictResp {
	resps := make([]conflictResp, len(conflicts))
	for i, c := range conflicts {
		resps[i] = conflictResp{
			TaskID:          c.TaskID,
			Title:           c.Title,
			Start:           c.Start,
			End:             c.End,
			DurationMinutes: c.DurationMinutes,
			Priority:        string(c.Priority),
			Source:          c.Source,
		}
	}
	return resps
}

type slotResp struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Confidence      float64   `json:"confidence"`
}

func newSlotResps(slots []scheduler.SlotSuggestion) []slotResp {
	resps := make([]slotResp, len(slots))
	for i, s := range slots {
		resps[i] = slotResp{
			Start:           s.Start,
			End:             s.End,
			DurationMinutes: s.DurationMinutes,
			Confidence:      s.Confidence,
		}
	}
	return resps
}

type memberErrorResp struct {
	TaskID string `json:"task_id,omitempty"`
	Error  string `json:"error"`
}

func newMemberErrorResps(failed []scheduler.MemberError) []memberErrorResp {
	if len(failed) == 0 {
		return nil
	}
	resps := make([]memberErrorResp, len(failed))
	for i, f := range failed {
		resps[i] = memberErrorResp{TaskID: f.TaskID, Error: f.Err}
	}
	return resps
}

type createResp struct {
	Task        *taskResp         `json:"task,omitempty"`
	Draft       *draftResp        `json:"draft,omitempty"`
	Conflicts   []conflictResp    `json:"conflicts,omitempty"`
	Suggestions []slotResp        `json:"suggestions,omitempty"`
	Occurrences []taskResp        `json:"occurrences,omitempty"`
	Failed      []memberErrorResp `json:"failed,omitempty"`
	Expansion   string            `json:"expansion_error,omitempty"`
}

func (h *handler) newCreateResp(out scheduler.CreateTaskOutput) createResp {
	resp := createResp{
		Conflicts:   newConflictResps(out.Conflicts),
		Suggestions: newSlotResps(out.Suggestions),
		Failed:      newMemberErrorResps(out.Failed),
		Expansion:   out.ExpansionError,
	}
	if out.Task != nil {
		task := newTaskResp(*out.Task)
		resp.Task = &task
	}
	if out.Draft != nil {
		draft := newDraftResp(*out.Draft)
		resp.Draft = &draft
	}
	if len(out.Occurrences) > 0 {
		resp.Occurrences = make([]taskResp, len(out.Occurrences))
		for i, occ := range out.Occurrences {
			resp.Occurrences[i] = newTaskResp(occ)
		}
	}
	return resp
}

type parseResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newParseResp(draft scheduler.TaskDraft) parseResp {
	return parseResp{Draft: newDraftResp(draft)}
}

type conflictsResp struct {
	Conflicts []conflictResp `json:"conflicts"`
}

func (h *handler) newConflictsResp(conflicts []scheduler.ConflictReport) conflictsResp {
	return conflictsResp{Conflicts: newConflictResps(conflicts)}
}

type slotsResp struct {
	Slots []slotResp `json:"slots"`
}

func (h *handler) newSlotsResp(slots []scheduler.SlotSuggestion) slotsResp {
	return slotsResp{Slots: newSlotResps(slots)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out scheduler.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newTaskResp(task)
	}
	return listResp{Tasks: tasks, Limit: out.Limit, Offset: out.Offset}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(task model.Task) detailResp {
	return detailResp{Task: newTaskResp(task)}
}

type mutationResp struct {
	Resolved []string          `json:"resolved"`
	Applied  []string          `json:"applied"`
	Failed   []memberErrorResp `json:"failed,omitempty"`
}

func (h *handler) newMutationResp(out scheduler.MutationOutput) mutationResp {
	return mutationResp{
		Resolved: out.Resolved,
		Applied:  out.Applied,
		Failed:   newMemberErrorResps(out.Failed),
	}
}
