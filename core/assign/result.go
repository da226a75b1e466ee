package assign

import (
	"sort"
	"time"
)

// DayResult holds one date's assignments. Every task name scheduled for the
// date appears as a key, even when no worker could be assigned.
type DayResult struct {
	Date string `json:"date"`
	// Assignments maps each scheduled task display name to the assigned
	// worker names, in eligible-worker order. Duplicate schedule entries
	// share one key and their assignees are merged.
	Assignments map[string][]string `json:"assignments"`
	// Unregistered flags task names that matched nothing in the registry.
	Unregistered    map[string]bool `json:"unregistered,omitempty"`
	Objective       float64         `json:"objective"`
	EligibleWorkers int             `json:"eligible_workers"`
	Status          string          `json:"status"`
	SolveTime       time.Duration   `json:"solve_time_ns"`
}

// AssignedCount returns the total number of assignment slots filled.
func (d DayResult) AssignedCount() int {
	n := 0
	for _, workers := range d.Assignments {
		n += len(workers)
	}
	return n
}

// ScheduleResult aggregates per-day results for a run. A date appears either
// in Days or in Failures, never both; together they cover exactly the dates
// present in the input schedule. An empty day result and a failed day are
// therefore distinguishable.
type ScheduleResult struct {
	RunID    string               `json:"run_id"`
	Days     map[string]DayResult `json:"days"`
	Failures map[string]string    `json:"failures,omitempty"`
}

// Dates returns all schedule dates of the run, sorted, whether they
// succeeded or failed.
func (r ScheduleResult) Dates() []string {
	dates := make([]string, 0, len(r.Days)+len(r.Failures))
	for d := range r.Days {
		dates = append(dates, d)
	}
	for d := range r.Failures {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
