package loader

import (
	"strconv"
	"strings"
	"time"

	"github.com/kaiyomaru/fieldassign/core/model"
)

// Legacy roster sheets encode rules as note markers instead of structured
// columns. They are still honored so existing sheets keep working after a
// plain CSV export.
const (
	noteAnalysisPriority = "分析優先"
	noteMonTueOnly       = "月火のみ"
)

// applyNotes fills in rules parsed from a free-text notes field, without
// overriding structured columns that were already set.
func applyNotes(w *model.Worker, notes string) {
	if notes == "" {
		return
	}
	if strings.Contains(notes, noteAnalysisPriority) {
		w.AnalysisPriority = true
	}
	if len(w.Weekdays) == 0 && strings.Contains(notes, noteMonTueOnly) {
		w.Weekdays = []time.Weekday{time.Monday, time.Tuesday}
	}
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// parseWeekdays parses a comma-separated weekday list such as "Mon,Tue".
// Unknown names are ignored; an empty result means no restriction.
func parseWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			days = append(days, d)
		}
	}
	return days
}

// ParseDuration parses a task duration in hours. Range notation like
// "0.5～3" (or with an ASCII tilde) yields the midpoint. Unparsable values
// fall back to 1.0, matching the registry's historical behavior.
func ParseDuration(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1.0
	}
	normalized := strings.ReplaceAll(s, "～", "~")
	if strings.Contains(normalized, "~") {
		parts := strings.SplitN(normalized, "~", 2)
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLo != nil || errHi != nil {
			return 1.0
		}
		return (lo + hi) / 2
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 1.0
	}
	return v
}
