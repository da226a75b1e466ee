package metrics

import "time"

// DayRecord describes the outcome of one day's optimization for
// observability purposes.
type DayRecord struct {
	RunID           string
	Date            string
	Tasks           int
	EligibleWorkers int
	AssignedWorkers int
	Objective       float64
	SolveTime       time.Duration
	Failed          bool
}

// Sink records day optimization outcomes.
type Sink interface {
	RecordDayResults(recs []DayRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordDayResults([]DayRecord) error { return nil }
