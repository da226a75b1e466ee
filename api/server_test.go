package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiyomaru/fieldassign/core/assign"
	"github.com/kaiyomaru/fieldassign/core/model"
	"github.com/kaiyomaru/fieldassign/core/solver"
	"github.com/kaiyomaru/fieldassign/infra/loader"
	"github.com/kaiyomaru/fieldassign/infra/logger"
)

func testServer(t *testing.T, onRun func(assign.ScheduleResult)) *Server {
	t.Helper()
	ds := &loader.Dataset{
		Workers: []model.Worker{{Name: "sato", Skill: 4, Strength: 4}},
		Tasks: []model.Task{
			{Name: "survey", Area: "harbor", RequiredWorkers: 1, RequiredSkill: 3, RequiredStrength: 3},
		},
		Schedule: []model.ScheduleEntry{
			{Date: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), TaskName: "survey"},
		},
	}
	opt, err := assign.NewScheduleOptimizer(ds.Workers, ds.Tasks, solver.NewBranchAndBound(), assign.Config{}, nil, nil)
	require.NoError(t, err)
	return NewServer(ds, opt, logger.NopLogger{}, onRun)
}

func doJSON(t *testing.T, h http.Handler, method, target string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestHandleData(t *testing.T) {
	h := testServer(t, nil).Handler()
	code, body := doJSON(t, h, http.MethodGet, "/api/data")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"2025-04-07"}, body["dates"])
}

func TestHandleScheduleDateNotFound(t *testing.T) {
	h := testServer(t, nil).Handler()
	code, body := doJSON(t, h, http.MethodGet, "/api/schedule/2025-12-31")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestHandleOptimizeAndScheduleDate(t *testing.T) {
	var ran []assign.ScheduleResult
	srv := testServer(t, func(r assign.ScheduleResult) { ran = append(ran, r) })
	h := srv.Handler()

	code, body := doJSON(t, h, http.MethodPost, "/api/optimize")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["run_id"])
	require.Len(t, ran, 1)

	// The run is retained, so the per-date view now carries assignments.
	code, body = doJSON(t, h, http.MethodGet, "/api/schedule/2025-04-07")
	require.Equal(t, http.StatusOK, code)
	assignments, ok := body["assignments"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"sato"}, assignments["survey"])
}

func TestHandleOptimizeDay(t *testing.T) {
	h := testServer(t, nil).Handler()

	code, body := doJSON(t, h, http.MethodPost, "/api/optimize/day/2025-04-07")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = doJSON(t, h, http.MethodPost, "/api/optimize/day/not-a-date")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])

	code, _ = doJSON(t, h, http.MethodPost, "/api/optimize/day/2025-12-31")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandleDownload(t *testing.T) {
	h := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/download", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, _ := doJSON(t, h, http.MethodPost, "/api/optimize")
	require.Equal(t, http.StatusOK, code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/download", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "date")
	assert.Contains(t, rec.Body.String(), "sato")
}
