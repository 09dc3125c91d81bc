package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"daynix/internal/middleware"
	"daynix/internal/model"
	"daynix/internal/planner"
	plannerHTTP "daynix/internal/planner/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockUseCase overrides only the methods the handler under test reaches.
type mockUseCase struct {
	planner.UseCase

	addOutput      model.Task
	addErr         error
	boardOutput    planner.BoardOutput
	boardErr       error
	listOutput     []model.Task
	deleteErr      error
	completeOutput model.Task
	completeErr    error
	autoMoveOutput planner.AutoMoveOutput
	autoMoveErr    error
	conflicts      []model.Task
}

func (m *mockUseCase) AddTask(ctx context.Context, input planner.AddTaskInput) (model.Task, error) {
	return m.addOutput, m.addErr
}
func (m *mockUseCase) Board(ctx context.Context, now time.Time) (planner.BoardOutput, error) {
	return m.boardOutput, m.boardErr
}
func (m *mockUseCase) ListTasks(ctx context.Context, input planner.ListTasksInput) ([]model.Task, error) {
	return m.listOutput, nil
}
func (m *mockUseCase) DeleteTask(ctx context.Context, id string) error {
	return m.deleteErr
}
func (m *mockUseCase) CompleteTask(ctx context.Context, id string, now time.Time) (model.Task, error) {
	return m.completeOutput, m.completeErr
}
func (m *mockUseCase) AutoMoveBatch(ctx context.Context, now time.Time) (planner.AutoMoveOutput, error) {
	return m.autoMoveOutput, m.autoMoveErr
}
func (m *mockUseCase) DetectConflicts(candidate model.Task, tasks []model.Task, excludeID string) []model.Task {
	return m.conflicts
}

func newTestRouter(uc planner.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, middleware.Config{RateLimitPerMin: 100000})
	h := plannerHTTP.New(&mockLogger{}, uc, nil)
	plannerHTTP.RegisterRoutes(r.Group("/api/v1/planner"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreateTask(t *testing.T) {
	uc := &mockUseCase{addOutput: model.Task{ID: "t1", Title: "Read", Type: model.TaskTypeFloating}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks", gin.H{"title": "Read"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.ID != "t1" {
		t.Errorf("id = %q", resp.Data.ID)
	}
}

func TestCreateTask_MissingTitle(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks", gin.H{"type": "floating"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTask_DomainError(t *testing.T) {
	uc := &mockUseCase{addErr: planner.ErrMissingTime}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks", gin.H{"title": "x", "type": "timeBound"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBoard(t *testing.T) {
	uc := &mockUseCase{boardOutput: planner.BoardOutput{
		Buckets: planner.CategorizeOutput{
			Running: []model.Task{{ID: "r1", Type: model.TaskTypeTimeBound, Time: "14:00"}},
		},
		ActiveSlots: []model.ActiveSlot{{ID: "office-session", Kind: model.SlotKindOffice}},
	}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/planner/board", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Running []struct {
				ID          string `json:"id"`
				TimeDisplay string `json:"timeDisplay"`
			} `json:"running"`
			ActiveSlots []struct {
				Kind string `json:"type"`
			} `json:"activeSlots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data.Running) != 1 || resp.Data.Running[0].ID != "r1" {
		t.Errorf("running = %+v", resp.Data.Running)
	}
	if resp.Data.Running[0].TimeDisplay != "2:00 PM" {
		t.Errorf("timeDisplay = %q", resp.Data.Running[0].TimeDisplay)
	}
	if len(resp.Data.ActiveSlots) != 1 || resp.Data.ActiveSlots[0].Kind != "office" {
		t.Errorf("activeSlots = %+v", resp.Data.ActiveSlots)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	uc := &mockUseCase{deleteErr: planner.ErrTaskNotFound}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/planner/tasks/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAutoMove_NothingToMove(t *testing.T) {
	uc := &mockUseCase{autoMoveErr: planner.ErrNothingToMove}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks/automove", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestConflicts(t *testing.T) {
	uc := &mockUseCase{conflicts: []model.Task{{ID: "busy", Type: model.TaskTypeTimeBound, Time: "10:00"}}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks/conflicts", gin.H{
		"type": "timeBound", "date": "2025-03-11", "time": "09:30",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Count     int `json:"count"`
			Conflicts []struct {
				ID string `json:"id"`
			} `json:"conflicts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Count != 1 || resp.Data.Conflicts[0].ID != "busy" {
		t.Errorf("conflicts = %+v", resp.Data)
	}
}

func TestCompleteTask(t *testing.T) {
	done := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	uc := &mockUseCase{completeOutput: model.Task{ID: "t1", Completed: true, CompletedAt: &done}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/planner/tasks/t1/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Completed bool `json:"completed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Data.Completed {
		t.Error("completed flag not set in response")
	}
}
