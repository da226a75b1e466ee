// Package export renders optimization results as CSV assignment tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/kaiyomaru/fieldassign/core/assign"
	"github.com/kaiyomaru/fieldassign/core/model"
)

// assigneeColumns is the number of per-task assignee columns in the table.
// Wider crews spill into the last column, comma-joined.
const assigneeColumns = 4

// WriteCSV writes one row per (date, task) with the date's weekday and up to
// four assignee columns. Failed dates are included with a note in the first
// assignee column so the table still covers the whole schedule.
func WriteCSV(w io.Writer, res assign.ScheduleResult) error {
	cw := csv.NewWriter(w)

	head := []string{"date", "weekday", "task"}
	for i := 1; i <= assigneeColumns; i++ {
		head = append(head, fmt.Sprintf("worker%d", i))
	}
	if err := cw.Write(head); err != nil {
		return err
	}

	for _, date := range res.Dates() {
		weekday := weekdayOf(date)
		if msg, failed := res.Failures[date]; failed {
			row := []string{date, weekday, "", "FAILED: " + msg, "", "", ""}
			if err := cw.Write(row); err != nil {
				return err
			}
			continue
		}
		day := res.Days[date]
		for _, task := range sortedTasks(day) {
			row := []string{date, weekday, task}
			workers := day.Assignments[task]
			for i := 0; i < assigneeColumns; i++ {
				switch {
				case i == assigneeColumns-1 && len(workers) > assigneeColumns:
					row = append(row, join(workers[i:]))
				case i < len(workers):
					row = append(row, workers[i])
				default:
					row = append(row, "")
				}
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func sortedTasks(day assign.DayResult) []string {
	tasks := make([]string, 0, len(day.Assignments))
	for t := range day.Assignments {
		tasks = append(tasks, t)
	}
	sort.Strings(tasks)
	return tasks
}

func weekdayOf(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

func join(workers []string) string {
	out := workers[0]
	for _, w := range workers[1:] {
		out += "," + w
	}
	return out
}
