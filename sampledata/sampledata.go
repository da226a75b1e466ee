// Package sampledata writes an anonymized demo dataset so the service can be
// exercised without real roster files.
package sampledata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type workerRow struct {
	name             string
	skill            int
	trouble          int
	temperament      int
	strength         int
	vessel           int
	drive            int
	navigate         int
	weekdays         string
	analysisPriority bool
}

var demoWorkers = []workerRow{
	{"yamada", 5, 1, 5, 5, 1, 1, 1, "", false},
	{"suzuki", 4, 2, 4, 4, 1, 1, 0, "", false},
	{"tanaka", 4, 1, 5, 3, 0, 1, 0, "", false},
	{"sato", 3, 3, 3, 4, 1, 1, 1, "", false},
	{"takahashi", 5, 1, 4, 5, 1, 1, 1, "", false},
	{"ito", 3, 2, 4, 3, 0, 1, 0, "", true},
	{"watanabe", 4, 1, 5, 4, 1, 1, 0, "", false},
	{"nakamura", 3, 2, 4, 3, 0, 0, 0, "Mon,Tue", false},
	{"kobayashi", 5, 1, 5, 5, 1, 1, 1, "", false},
	{"kato", 4, 1, 4, 3, 0, 1, 0, "", false},
	{"yoshida", 3, 2, 3, 4, 1, 1, 1, "", false},
	{"yamamoto", 4, 1, 5, 3, 0, 1, 0, "", false},
	{"matsumoto", 3, 2, 4, 4, 1, 1, 0, "", false},
	{"inoue", 2, 3, 3, 2, 0, 0, 0, "", false},
}

type taskRow struct {
	name       string
	area       string
	workers    int
	skill      int
	strength   int
	urgency    int
	vessel     int
	navigation int
	duration   string
}

var demoTasks = []taskRow{
	{"east water survey A", "east", 2, 4, 3, 3, 0, 0, "1"},
	{"east water survey B", "east", 2, 3, 3, 3, 0, 0, "1"},
	{"west soil sampling", "west", 2, 3, 4, 3, 0, 0, "1.5"},
	{"north air measurement", "north", 1, 4, 3, 4, 0, 0, "0.5"},
	{"south river survey", "south", 2, 3, 4, 3, 0, 0, "2"},
	{"central drainage check", "central", 2, 4, 3, 4, 0, 0, "1"},
	{"industrial stack measurement", "industrial", 2, 5, 4, 3, 0, 0, "1.5"},
	{"harbor seawater sampling", "harbor", 3, 4, 5, 3, 4, 4, "1~5"},
	{"forest vegetation survey", "forest", 2, 3, 4, 2, 0, 0, "2"},
	{"lake sediment survey", "lake", 2, 4, 4, 3, 4, 4, "2"},
	{"plant sludge analysis", "plant", 2, 4, 3, 4, 0, 0, "1"},
	{"farmland soil check", "farmland", 1, 3, 3, 2, 0, 0, "1"},
	{"residential noise measurement", "residential", 1, 2, 2, 2, 0, 0, "0.5"},
	{"commercial exhaust measurement", "commercial", 1, 2, 2, 2, 0, 0, "0.5"},
	{"dam water monitoring", "dam", 2, 4, 3, 4, 0, 0, "1.5"},
	{"waterworks specimen collection", "waterworks", 2, 3, 3, 3, 0, 0, "1"},
	{"sewage effluent check", "sewage", 2, 3, 3, 3, 0, 0, "1"},
	{"factory wastewater analysis", "factory", 2, 4, 3, 4, 0, 0, "1.5"},
	{"coast beach survey", "coast", 2, 3, 4, 2, 0, 0, "2"},
	{"mountain spring sampling", "mountain", 1, 3, 4, 2, 0, 0, "1.5"},
}

// Write generates workers.csv, tasks.csv and schedule.csv in dir. The
// schedule covers the weekdays of April 2025 with two to four tasks per day,
// cycling through the registry.
func Write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeWorkers(filepath.Join(dir, "workers.csv")); err != nil {
		return err
	}
	if err := writeTasks(filepath.Join(dir, "tasks.csv")); err != nil {
		return err
	}
	return writeSchedule(filepath.Join(dir, "schedule.csv"))
}

func writeWorkers(path string) error {
	rows := [][]string{{"name", "priority", "skill", "trouble", "temperament", "strength", "vessel", "drive", "navigate", "weekdays", "analysis_priority", "notes"}}
	for i, w := range demoWorkers {
		rows = append(rows, []string{
			w.name,
			strconv.Itoa(i + 1),
			strconv.Itoa(w.skill),
			strconv.Itoa(w.trouble),
			strconv.Itoa(w.temperament),
			strconv.Itoa(w.strength),
			strconv.Itoa(w.vessel),
			strconv.Itoa(w.drive),
			strconv.Itoa(w.navigate),
			w.weekdays,
			strconv.FormatBool(w.analysisPriority),
			"",
		})
	}
	return writeCSV(path, rows)
}

func writeTasks(path string) error {
	rows := [][]string{{"id", "name", "area", "required_workers", "required_skill", "required_strength", "urgency", "vessel_work", "navigation", "duration"}}
	for i, t := range demoTasks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.name,
			t.area,
			strconv.Itoa(t.workers),
			strconv.Itoa(t.skill),
			strconv.Itoa(t.strength),
			strconv.Itoa(t.urgency),
			strconv.Itoa(t.vessel),
			strconv.Itoa(t.navigation),
			t.duration,
		})
	}
	return writeCSV(path, rows)
}

func writeSchedule(path string) error {
	rows := [][]string{{"date", "task_name"}}
	base := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	taskIdx := 0
	for day := 0; day < 30; day++ {
		date := base.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		n := day%3 + 2
		for i := 0; i < n; i++ {
			rows = append(rows, []string{
				date.Format("2006-01-02"),
				demoTasks[taskIdx%len(demoTasks)].name,
			})
			taskIdx++
		}
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
