package model

import "time"

// DateLayout is the canonical date key format used across results,
// the API and exports.
const DateLayout = "2006-01-02"

// DateKey formats a date as a result key.
func DateKey(t time.Time) string { return t.Format(DateLayout) }

// ScheduleEntry is one scheduled occurrence of a task on a date.
// The name is free text and need not match a registry entry exactly.
type ScheduleEntry struct {
	Date     time.Time `json:"date"`
	TaskName string    `json:"task_name" validate:"required"`
}

// ResolvedTask binds a registry definition (or an unregistered default)
// to one schedule entry's original display name.
type ResolvedTask struct {
	Task
	OriginalName string `json:"original_name"`
	Unregistered bool   `json:"unregistered"`
}
