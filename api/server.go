// Package api exposes the optimizer over HTTP for the roster frontend.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/kaiyomaru/fieldassign/core/assign"
	corelogger "github.com/kaiyomaru/fieldassign/core/logger"
	"github.com/kaiyomaru/fieldassign/core/model"
	"github.com/kaiyomaru/fieldassign/infra/export"
	"github.com/kaiyomaru/fieldassign/infra/loader"
)

// Config defines the API listener settings.
type Config struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Server serves the dataset and optimization endpoints. The last run is kept
// behind a mutex so per-date queries and CSV download work after an
// optimize call; there is no other process-wide state.
type Server struct {
	ds    *loader.Dataset
	opt   *assign.ScheduleOptimizer
	log   corelogger.Logger
	onRun func(assign.ScheduleResult)

	mu   sync.Mutex
	last *assign.ScheduleResult
}

// NewServer builds a Server. onRun, when non-nil, is invoked after every
// successful schedule optimization (used to fan results out over MQTT).
func NewServer(ds *loader.Dataset, opt *assign.ScheduleOptimizer, log corelogger.Logger, onRun func(assign.ScheduleResult)) *Server {
	return &Server{ds: ds, opt: opt, log: log, onRun: onRun}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", s.handleData)
	mux.HandleFunc("GET /api/workers", s.handleWorkers)
	mux.HandleFunc("GET /api/schedule/{date}", s.handleScheduleDate)
	mux.HandleFunc("POST /api/optimize", s.handleOptimize)
	mux.HandleFunc("POST /api/optimize/day/{date}", s.handleOptimizeDay)
	mux.HandleFunc("GET /api/download", s.handleDownload)
	return mux
}

type workerSummary struct {
	Name             string `json:"name"`
	Skill            int    `json:"skill"`
	AnalysisPriority bool   `json:"analysis_priority"`
}

type daySummary struct {
	Date      string   `json:"date"`
	TaskCount int      `json:"task_count"`
	Tasks     []string `json:"tasks"`
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	byDate := s.scheduleByDate()
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	summary := make([]daySummary, 0, len(dates))
	for _, d := range dates {
		summary = append(summary, daySummary{Date: d, TaskCount: len(byDate[d]), Tasks: byDate[d]})
	}
	workers := make([]workerSummary, 0, len(s.ds.Workers))
	for _, wk := range s.ds.Workers {
		workers = append(workers, workerSummary{Name: wk.Name, Skill: wk.Skill, AnalysisPriority: wk.AnalysisPriority})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"dates":    dates,
		"workers":  workers,
		"schedule": summary,
	})
}

func (s *Server) handleWorkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"workers": s.ds.Workers,
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	res := s.opt.Optimize(r.Context(), s.ds.Schedule)

	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()

	if s.onRun != nil {
		s.onRun(res)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"run_id":   res.RunID,
		"results":  res.Days,
		"failures": res.Failures,
		"dates":    res.Dates(),
	})
}

func (s *Server) handleOptimizeDay(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("date")
	date, err := time.Parse(model.DateLayout, key)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q", key))
		return
	}
	tasks, ok := s.scheduleByDate()[key]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("date %s not found in schedule", key))
		return
	}

	day, err := s.opt.OptimizeDay(r.Context(), date, tasks)
	if err != nil {
		s.log.Errorf("optimize day %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"date":    key,
		"results": day,
	})
}

func (s *Server) handleScheduleDate(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("date")
	tasks, ok := s.scheduleByDate()[key]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("date %s not found", key))
		return
	}

	resp := map[string]any{
		"success": true,
		"date":    key,
		"tasks":   tasks,
	}
	s.mu.Lock()
	if s.last != nil {
		if day, ok := s.last.Days[key]; ok {
			resp["assignments"] = day.Assignments
		} else if msg, ok := s.last.Failures[key]; ok {
			resp["failure"] = msg
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		writeError(w, http.StatusBadRequest, "no optimization has been run yet")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=assignments_%s.csv", time.Now().Format("20060102_150405")))
	if err := export.WriteCSV(w, *last); err != nil {
		s.log.Errorf("export csv: %v", err)
	}
}

func (s *Server) scheduleByDate() map[string][]string {
	byDate := make(map[string][]string)
	for _, e := range s.ds.Schedule {
		key := model.DateKey(e.Date)
		byDate[key] = append(byDate[key], e.TaskName)
	}
	return byDate
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}
