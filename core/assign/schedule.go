package assign

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaiyomaru/fieldassign/core/logger"
	"github.com/kaiyomaru/fieldassign/core/metrics"
	"github.com/kaiyomaru/fieldassign/core/model"
	"github.com/kaiyomaru/fieldassign/core/solver"
)

// ScheduleOptimizer iterates the day optimizer over every date of a schedule.
// Days are independent, so they are solved with bounded parallelism; the only
// shared state is the read-only registries.
type ScheduleOptimizer struct {
	day         *DayOptimizer
	maxParallel int
	log         logger.Logger
	sink        metrics.Sink
}

// NewScheduleOptimizer validates the registries and builds the optimizer.
// Empty registries are fatal input errors.
func NewScheduleOptimizer(workers []model.Worker, registry []model.Task, sv solver.Solver, cfg Config, log logger.Logger, sink metrics.Sink) (*ScheduleOptimizer, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	if len(registry) == 0 {
		return nil, ErrNoTasks
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &ScheduleOptimizer{
		day:         NewDayOptimizer(workers, registry, sv, cfg.SolverTimeout(), log),
		maxParallel: cfg.MaxConcurrentDays,
		log:         log,
		sink:        sink,
	}, nil
}

type dayJob struct {
	key   string
	date  time.Time
	names []string
}

// Optimize solves every date present in the schedule and aggregates the
// results. A single day's solver failure does not abort the remaining days;
// it is recorded in Failures instead. Cancelling the context stops launching
// new days and fails in-flight ones, while completed day results are kept.
func (s *ScheduleOptimizer) Optimize(ctx context.Context, entries []model.ScheduleEntry) ScheduleResult {
	result := ScheduleResult{
		RunID:    uuid.NewString(),
		Days:     make(map[string]DayResult),
		Failures: make(map[string]string),
	}
	jobs := groupByDate(entries)
	s.log.Infof("run %s: optimizing %d days", result.RunID, len(jobs))

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		recs []metrics.DayRecord
	)
	sem := make(chan struct{}, s.maxParallel)

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			result.Failures[job.key] = err.Error()
			mu.Unlock()
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(job dayJob) {
			defer wg.Done()
			defer func() { <-sem }()

			day, err := s.day.Optimize(ctx, job.date, job.names)
			mu.Lock()
			defer mu.Unlock()
			rec := metrics.DayRecord{
				RunID: result.RunID,
				Date:  job.key,
				Tasks: len(job.names),
			}
			if err != nil {
				s.log.Errorf("run %s: %v", result.RunID, err)
				result.Failures[job.key] = err.Error()
				rec.Failed = true
			} else {
				result.Days[job.key] = day
				rec.EligibleWorkers = day.EligibleWorkers
				rec.AssignedWorkers = day.AssignedCount()
				rec.Objective = day.Objective
				rec.SolveTime = day.SolveTime
			}
			recs = append(recs, rec)
		}(job)
	}
	wg.Wait()

	if err := s.sink.RecordDayResults(recs); err != nil {
		s.log.Errorf("run %s: record metrics: %v", result.RunID, err)
	}
	s.log.Infof("run %s: %d days optimized, %d failed", result.RunID, len(result.Days), len(result.Failures))
	return result
}

// OptimizeDay solves a single date outside a schedule run.
func (s *ScheduleOptimizer) OptimizeDay(ctx context.Context, date time.Time, taskNames []string) (DayResult, error) {
	return s.day.Optimize(ctx, date, taskNames)
}

// groupByDate buckets schedule entries per date, preserving entry order
// within a day, and returns the days in chronological order.
func groupByDate(entries []model.ScheduleEntry) []dayJob {
	byKey := make(map[string]*dayJob)
	for _, e := range entries {
		key := model.DateKey(e.Date)
		job, ok := byKey[key]
		if !ok {
			job = &dayJob{key: key, date: e.Date}
			byKey[key] = job
		}
		job.names = append(job.names, e.TaskName)
	}
	jobs := make([]dayJob, 0, len(byKey))
	for _, job := range byKey {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].key < jobs[j].key })
	return jobs
}
