package model

import "time"

// Worker represents a field worker eligible for task assignment.
// Records are loaded once per run and treated as read-only afterwards.
type Worker struct {
	Name        string `json:"name" validate:"required"`
	Priority    int    `json:"priority"`
	Skill       int    `json:"skill" validate:"gte=0"`
	Strength    int    `json:"strength" validate:"gte=0"`
	Trouble     int    `json:"trouble"`     // incident proneness, lower is better; descriptive only
	Temperament int    `json:"temperament"` // descriptive only
	Vessel      bool   `json:"vessel"`      // can work on board a vessel
	Drive       bool   `json:"drive"`
	Navigate    bool   `json:"navigate"`

	// AnalysisPriority marks workers that should stay on lab analysis:
	// they remain assignable but every field score is penalized.
	AnalysisPriority bool `json:"analysis_priority"`

	// Weekdays restricts the days the worker may be scheduled.
	// An empty set means the worker is available every day.
	Weekdays []time.Weekday `json:"weekdays"`
}

// AvailableOn reports whether the worker may be scheduled on the given date.
func (w Worker) AvailableOn(date time.Time) bool {
	if len(w.Weekdays) == 0 {
		return true
	}
	wd := date.Weekday()
	for _, d := range w.Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}
