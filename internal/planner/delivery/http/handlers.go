package http

import (
	"github.com/gin-gonic/gin"

	"daynix/pkg/response"
)

// Board godoc
// @Summary     Get the categorized board
// @Description Runs a recurrence pass and returns the four status buckets plus currently active availability slots.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} boardResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Board(ctx, h.clock.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBoardResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a floating, time-bound, or time-range task. Recurring tasks become hidden parents that spawn daily instances.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.AddTask(ctx, req.toAddInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// List godoc
// @Summary     List tasks
// @Description Returns the stored tasks. Recurring parents are hidden unless includeParents is set.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       q              query string false "Match against title and description, case-insensitive"
// @Param       includeParents query bool   false "Include recurring parents"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Update godoc
// @Summary     Update a task
// @Description Rewrites the editable fields of a task. Completion state and recurrence lineage are preserved.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body taskReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.UpdateTask(ctx, req.toUpdateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task done at the current instant. Completion is terminal.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.CompleteTask(ctx, id, h.clock.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// ToggleLock godoc
// @Summary     Toggle a task's lock
// @Description Locked tasks are exempt from auto-move.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{id}/lock [POST]
func (h *handler) ToggleLock(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.ToggleLock(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleLock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// Conflicts godoc
// @Summary     Check a candidate task for schedule conflicts
// @Description Returns every stored task whose interval overlaps the candidate's. Advisory only, never blocks creation.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body conflictsReq true "Candidate task, with optional excludeId while editing"
// @Success     200  {object} conflictsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/conflicts [POST]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, listAllInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	conflicts := h.uc.DetectConflicts(req.toTask(), tasks, req.ExcludeID)
	response.OK(c, h.newConflictsResp(conflicts))
}

// AutoMove godoc
// @Summary     Move all stale tasks to tomorrow
// @Description Relocates every unlocked, uncompleted task in the Old bucket. Locked tasks stay put.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} autoMoveResp
// @Failure     400 {object} response.Resp "Nothing to move"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/automove [POST]
func (h *handler) AutoMove(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.AutoMoveBatch(ctx, h.clock.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.AutoMoveBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAutoMoveResp(output))
}

// GetPreferences godoc
// @Summary     Get planner preferences
// @Description Returns the stored preferences, or the defaults when none have been saved.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Success     200 {object} model.Preferences
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/preferences [GET]
func (h *handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := h.uc.GetPreferences(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPreferences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, prefs)
}

// SavePreferences godoc
// @Summary     Replace planner preferences
// @Description Replaces the preferences wholesale. The sleep target is recomputed from the sleep/wake window.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Param       body body model.Preferences true "Preferences"
// @Success     200 {object} model.Preferences
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/preferences [PUT]
func (h *handler) SavePreferences(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := h.processPreferencesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SavePreferences(ctx, prefs); err != nil {
		h.l.Errorf(ctx, "uc.SavePreferences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	stored, err := h.uc.GetPreferences(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPreferences: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, stored)
}

// ExportBackup godoc
// @Summary     Export a backup
// @Description Snapshots tasks, preferences and settings into a versioned archive and stamps the backup time.
// @Tags        Backup
// @Accept      json
// @Produce     json
// @Success     200 {object} planner.Backup
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/backup/export [POST]
func (h *handler) ExportBackup(c *gin.Context) {
	ctx := c.Request.Context()

	backup, err := h.uc.ExportBackup(ctx, h.clock.Now())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportBackup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, backup)
}

// ImportBackup godoc
// @Summary     Import a backup
// @Description Merges an exported archive into the store. Existing tasks win on ID collisions.
// @Tags        Backup
// @Accept      json
// @Produce     json
// @Param       body body planner.Backup true "Backup archive"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Invalid backup"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/backup/import [POST]
func (h *handler) ImportBackup(c *gin.Context) {
	ctx := c.Request.Context()

	backup, err := h.processBackupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportBackup(ctx, backup)
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportBackup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
