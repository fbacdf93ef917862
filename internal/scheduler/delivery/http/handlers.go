package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task from structured fields and/or free text. Free text
// @Description is parsed to fill unset fields. Schedulable tasks are checked for
// @Description conflicts first; on conflict nothing is created and the response
// @Description carries the conflicts plus alternative slot suggestions. A
// @Description recurrence rule materializes the occurrence series.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Parse godoc
// @Summary     Preview a parse
// @Description Parses free text into a task draft with a confidence score
// @Description without persisting anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(draft))
}

// Conflicts godoc
// @Summary     Detect conflicts
// @Description Returns every existing commitment overlapping the proposed
// @Description interval. Touching boundaries do not conflict.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       owner            query string true "Owner id"
// @Param       start            query string true "Proposed start (RFC3339)"
// @Param       duration_minutes query int    true "Proposed duration in minutes"
// @Success     200 {object} conflictsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/conflicts [GET]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conflicts, err := h.uc.DetectConflicts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectConflicts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConflictsResp(conflicts))
}

// Slots godoc
// @Summary     Suggest free slots
// @Description Scans the coming working days for free intervals large enough
// @Description for the requested duration, ranked by confidence.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       owner            query string true  "Owner id"
// @Param       duration_minutes query int    true  "Required duration in minutes"
// @Param       window_days      query int    false "Scan window in days (default: 7)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	slots, err := h.uc.SuggestSlots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestSlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSlotsResp(slots))
}

// List godoc
// @Summary     List tasks
// @Description Returns the owner's tasks, archived ones hidden unless requested.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       owner            query string true  "Owner id"
// @Param       include_archived query bool   false "Include archived tasks"
// @Param       limit            query int    false "Page size (default: 20)"
// @Param       offset           query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	task, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(task))
}

// Update godoc
// @Summary     Update a task or series
// @Description Applies the same field changes to every series member selected
// @Description by the scope query param (this/following/all, default this).
// @Description Partial failures are reported per member, not rolled back.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id    path  string    true  "Task ID"
// @Param       scope query string    false "Mutation scope (this/following/all)"
// @Param       body  body  updateReq true  "Fields to update"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// Delete godoc
// @Summary     Delete a task or series
// @Description Removes every series member selected by the scope query param
// @Description (this/following/all, default this).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Task ID"
// @Param       scope query string false "Mutation scope (this/following/all)"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	scope, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(output))
}
