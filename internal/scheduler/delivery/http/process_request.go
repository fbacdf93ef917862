package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/scheduler"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Text == "" && req.Title == "" {
		return req, pkgErrors.NewHTTPError(400, "either text or a title is required")
	}
	return req, nil
}

// processParseReq binds and validates the parse preview request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConflictsReq binds and validates the conflicts query parameters.
func (h *handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSlotsReq binds and validates the slot suggestion query parameters.
func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI/query
// params. Scope defaults to "this".
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}

	req.Scope = c.DefaultQuery("scope", string(scheduler.ScopeThis))
	if !scheduler.Scope(req.Scope).Valid() {
		return req, pkgErrors.NewHTTPError(400, "scope must be one of: this, following, all")
	}
	return req, nil
}

// processScope reads and validates the scope query param for delete.
func (h *handler) processScope(c *gin.Context) (scheduler.Scope, error) {
	scope := scheduler.Scope(c.DefaultQuery("scope", string(scheduler.ScopeThis)))
	if !scope.Valid() {
		return "", pkgErrors.NewHTTPError(400, "scope must be one of: this, following, all")
	}
	return scope, nil
}
