package http

import (
	"github.com/gin-gonic/gin"

	"daynix/internal/model"
	"daynix/internal/planner"
	pkgErrors "daynix/pkg/errors"
)

// processTaskReq binds and validates the create task request body.
func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Type == "" {
		req.Type = model.TaskTypeFloating
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (taskReq, error) {
	req, err := h.processTaskReq(c)
	if err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, nil
}

// processIDParam extracts the task ID URI param.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", pkgErrors.NewHTTPError(400, "id is required")
	}
	return id, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processConflictsReq binds and validates the conflict check body.
func (h *handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPreferencesReq binds the preferences replacement body.
func (h *handler) processPreferencesReq(c *gin.Context) (model.Preferences, error) {
	var prefs model.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// processBackupReq binds the backup archive body.
func (h *handler) processBackupReq(c *gin.Context) (planner.Backup, error) {
	var backup planner.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		return backup, err
	}
	return backup, nil
}
