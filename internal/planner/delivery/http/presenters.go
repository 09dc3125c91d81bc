package http

import (
	"time"

	"daynix/internal/model"
	"daynix/internal/planner"
	"daynix/pkg/timeutil"
)

// --- Request DTOs ---

// taskReq is shared by create and update: the edit flow rewrites every
// editable field, so the payloads are identical.
type taskReq struct {
	ID            string               `json:"-"` // populated from URI param on update
	Title         string               `json:"title"         binding:"required,min=1,max=255"`
	Description   string               `json:"description"   binding:"max=1000"`
	Type          model.TaskType       `json:"type"          binding:"omitempty,oneof=floating timeBound timeRange"`
	Date          string               `json:"date"`
	EndDate       string               `json:"endDate"`
	Time          string               `json:"time"`
	StartTime     string               `json:"startTime"`
	EndTime       string               `json:"endTime"`
	Locked        bool                 `json:"locked"`
	RecurringType model.RecurrenceType `json:"recurringType" binding:"omitempty,oneof=none daily weekly"`
	RecurringDays []int                `json:"recurringDays" binding:"omitempty,dive,gte=0,lte=6"`
}

func (r taskReq) validate() error { return nil }

func (r taskReq) toAddInput() planner.AddTaskInput {
	return planner.AddTaskInput{
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Date:          r.Date,
		EndDate:       r.EndDate,
		Time:          r.Time,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Locked:        r.Locked,
		RecurringType: r.RecurringType,
		RecurringDays: r.RecurringDays,
	}
}

func (r taskReq) toUpdateInput() planner.UpdateTaskInput {
	return planner.UpdateTaskInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Date:          r.Date,
		EndDate:       r.EndDate,
		Time:          r.Time,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Locked:        r.Locked,
		RecurringType: r.RecurringType,
		RecurringDays: r.RecurringDays,
	}
}

// ---

type listReq struct {
	Query          string `form:"q"`
	IncludeParents bool   `form:"includeParents"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() planner.ListTasksInput {
	return planner.ListTasksInput{
		Query:          r.Query,
		IncludeParents: r.IncludeParents,
	}
}

func listAllInput() planner.ListTasksInput {
	return planner.ListTasksInput{IncludeParents: true}
}

// ---

// conflictsReq carries a candidate task that may not be stored yet, plus the
// ID to skip while editing an existing one.
type conflictsReq struct {
	Type      model.TaskType `json:"type"      binding:"required,oneof=floating timeBound timeRange"`
	Date      string         `json:"date"`
	EndDate   string         `json:"endDate"`
	Time      string         `json:"time"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	ExcludeID string         `json:"excludeId"`
}

func (r conflictsReq) validate() error { return nil }

func (r conflictsReq) toTask() model.Task {
	return model.Task{
		Type:      r.Type,
		Date:      r.Date,
		EndDate:   r.EndDate,
		Time:      r.Time,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Description       string               `json:"description,omitempty"`
	Type              model.TaskType       `json:"type"`
	Date              string               `json:"date,omitempty"`
	EndDate           string               `json:"endDate,omitempty"`
	Time              string               `json:"time,omitempty"`
	StartTime         string               `json:"startTime,omitempty"`
	EndTime           string               `json:"endTime,omitempty"`
	TimeDisplay       string               `json:"timeDisplay,omitempty"`
	Locked            bool                 `json:"locked"`
	Completed         bool                 `json:"completed"`
	CompletedAt       *time.Time           `json:"completedAt,omitempty"`
	RecurringType     model.RecurrenceType `json:"recurringType,omitempty"`
	RecurringDays     []int                `json:"recurringDays,omitempty"`
	ParentTaskID      string               `json:"parentTaskId,omitempty"`
	LastDailyInstance *time.Time           `json:"lastDailyInstance,omitempty"`
	MovedCount        int                  `json:"movedCount,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Type:              t.Type,
		Date:              t.Date,
		EndDate:           t.EndDate,
		Time:              t.Time,
		StartTime:         t.StartTime,
		EndTime:           t.EndTime,
		Locked:            t.Locked,
		Completed:         t.Completed,
		CompletedAt:       t.CompletedAt,
		RecurringType:     t.RecurringType,
		RecurringDays:     t.RecurringDays,
		ParentTaskID:      t.ParentTaskID,
		LastDailyInstance: t.LastDailyInstance,
		MovedCount:        t.MovedCount,
		CreatedAt:         t.CreatedAt,
	}
	switch t.Type {
	case model.TaskTypeTimeBound:
		resp.TimeDisplay = timeutil.FormatDisplay(t.Time)
	case model.TaskTypeTimeRange:
		if s, e := timeutil.FormatDisplay(t.StartTime), timeutil.FormatDisplay(t.EndTime); s != "" && e != "" {
			resp.TimeDisplay = s + " - " + e
		}
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	return listResp{
		Tasks: newTaskResps(tasks),
		Total: len(tasks),
	}
}

type boardResp struct {
	Running          []taskResp         `json:"running"`
	Upcoming         []taskResp         `json:"upcoming"`
	Old              []taskResp         `json:"old"`
	Completed        []taskResp         `json:"completed"`
	ActiveSlots      []model.ActiveSlot `json:"activeSlots"`
	RecurringParents []taskResp         `json:"recurringParents"`
}

func (h *handler) newBoardResp(out planner.BoardOutput) boardResp {
	return boardResp{
		Running:          newTaskResps(out.Buckets.Running),
		Upcoming:         newTaskResps(out.Buckets.Upcoming),
		Old:              newTaskResps(out.Buckets.Old),
		Completed:        newTaskResps(out.Buckets.Completed),
		ActiveSlots:      out.ActiveSlots,
		RecurringParents: newTaskResps(out.RecurringParents),
	}
}

type conflictsResp struct {
	Conflicts []taskResp `json:"conflicts"`
	Count     int        `json:"count"`
}

func (h *handler) newConflictsResp(conflicts []model.Task) conflictsResp {
	return conflictsResp{
		Conflicts: newTaskResps(conflicts),
		Count:     len(conflicts),
	}
}

type autoMoveResp struct {
	Moved []taskResp `json:"moved"`
	Count int        `json:"count"`
}

func (h *handler) newAutoMoveResp(out planner.AutoMoveOutput) autoMoveResp {
	return autoMoveResp{
		Moved: newTaskResps(out.Moved),
		Count: out.Count,
	}
}

type importResp struct {
	TasksAdded int `json:"tasksAdded"`
}

func (h *handler) newImportResp(out planner.ImportOutput) importResp {
	return importResp{TasksAdded: out.TasksAdded}
}
