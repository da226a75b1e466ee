// Package loader reads worker, task and schedule data from CSV files and
// turns free-text annotations into the structured rules the optimizer
// consumes. All parsing concerns live here; the core only ever sees typed
// registries.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kaiyomaru/fieldassign/core/model"
)

// Config points at the input files.
type Config struct {
	WorkersFile  string `json:"workers_file"`
	TasksFile    string `json:"tasks_file"`
	ScheduleFile string `json:"schedule_file"`
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.WorkersFile == "" {
		return fmt.Errorf("workers_file is required")
	}
	if c.TasksFile == "" {
		return fmt.Errorf("tasks_file is required")
	}
	if c.ScheduleFile == "" {
		return fmt.Errorf("schedule_file is required")
	}
	return nil
}

// Dataset bundles everything a run needs. It is loaded once and shared
// read-only; reloading means building a new Dataset.
type Dataset struct {
	Workers  []model.Worker
	Tasks    []model.Task
	Schedule []model.ScheduleEntry
}

var validate = validator.New()

// Load reads and validates all three inputs. Any malformed record is fatal:
// no partial dataset is returned.
func Load(cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers, err := LoadWorkers(cfg.WorkersFile)
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}
	tasks, err := LoadTasks(cfg.TasksFile)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	schedule, err := LoadSchedule(cfg.ScheduleFile)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	return &Dataset{Workers: workers, Tasks: tasks, Schedule: schedule}, nil
}

// LoadWorkers reads the worker registry CSV.
func LoadWorkers(path string) ([]model.Worker, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	workers := make([]model.Worker, 0, len(rows))
	for i, row := range rows {
		w := model.Worker{
			Name:             row.get("name"),
			Priority:         row.getInt("priority"),
			Skill:            row.getInt("skill"),
			Trouble:          row.getInt("trouble"),
			Temperament:      row.getInt("temperament"),
			Strength:         row.getInt("strength"),
			Vessel:           row.getBool("vessel"),
			Drive:            row.getBool("drive"),
			Navigate:         row.getBool("navigate"),
			AnalysisPriority: row.getBool("analysis_priority"),
			Weekdays:         parseWeekdays(row.get("weekdays")),
		}
		applyNotes(&w, row.get("notes"))
		if err := validate.Struct(w); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		workers = append(workers, w)
	}
	if len(workers) == 0 {
		return nil, fmt.Errorf("%s: no worker records", path)
	}
	return workers, nil
}

// LoadTasks reads the task registry CSV.
func LoadTasks(path string) ([]model.Task, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(rows))
	for i, row := range rows {
		t := model.Task{
			ID:               row.getInt("id"),
			Name:             row.get("name"),
			Area:             row.get("area"),
			RequiredWorkers:  row.getInt("required_workers"),
			RequiredSkill:    row.getInt("required_skill"),
			RequiredStrength: row.getInt("required_strength"),
			Urgency:          row.getInt("urgency"),
			VesselWork:       row.getInt("vessel_work"),
			Navigation:       row.getInt("navigation"),
			Duration:         ParseDuration(row.get("duration")),
		}
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		tasks = append(tasks, t)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%s: no task records", path)
	}
	return tasks, nil
}

// LoadSchedule reads (date, task name) pairs.
func LoadSchedule(path string) ([]model.ScheduleEntry, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	entries := make([]model.ScheduleEntry, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse(model.DateLayout, strings.TrimSpace(row.get("date")))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: parse date: %w", path, i+2, err)
		}
		e := model.ScheduleEntry{Date: date, TaskName: row.get("task_name")}
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// row is a header-indexed CSV record.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(col string) string {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

func (r row) getInt(col string) int {
	n, err := strconv.Atoi(r.get(col))
	if err != nil {
		return 0
	}
	return n
}

func (r row) getBool(col string) bool {
	switch strings.ToLower(r.get(col)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func readCSV(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	header := make(map[string]int, len(head))
	for i, h := range head {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows []row
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, row{header: header, fields: fields})
	}
	return rows, nil
}
