package assign

import (
	"context"
	"fmt"
	"time"

	"github.com/kaiyomaru/fieldassign/core/logger"
	"github.com/kaiyomaru/fieldassign/core/model"
	"github.com/kaiyomaru/fieldassign/core/solver"
)

// DayOptimizer solves the assignment problem for single dates. Each call is
// independent and idempotent given identical inputs; the worker and task
// registries are shared read-only.
type DayOptimizer struct {
	workers  []model.Worker
	registry []model.Task
	solver   solver.Solver
	timeout  time.Duration
	log      logger.Logger
}

// NewDayOptimizer creates a day optimizer over the given registries.
func NewDayOptimizer(workers []model.Worker, registry []model.Task, sv solver.Solver, timeout time.Duration, log logger.Logger) *DayOptimizer {
	if log == nil {
		log = nopLogger{}
	}
	return &DayOptimizer{workers: workers, registry: registry, solver: sv, timeout: timeout, log: log}
}

// Optimize assigns workers to the named tasks scheduled on date. A day with
// no eligible workers yields all-empty assignments, which is a valid outcome.
// A solver fault is returned as a *DayError.
func (o *DayOptimizer) Optimize(ctx context.Context, date time.Time, taskNames []string) (DayResult, error) {
	key := model.DateKey(date)

	slots := make([]model.ResolvedTask, len(taskNames))
	res := DayResult{
		Date:        key,
		Assignments: make(map[string][]string, len(taskNames)),
	}
	for i, name := range taskNames {
		slots[i] = Resolve(name, o.registry)
		res.Assignments[slots[i].OriginalName] = []string{}
		if slots[i].Unregistered {
			if res.Unregistered == nil {
				res.Unregistered = make(map[string]bool)
			}
			res.Unregistered[slots[i].OriginalName] = true
			o.log.Warnf("day %s: task %q not in registry, using defaults", key, name)
		}
	}

	eligible := EligibleWorkers(o.workers, date)
	res.EligibleWorkers = len(eligible)
	if len(eligible) == 0 {
		o.log.Warnf("day %s: no eligible workers", key)
		res.Status = "no_eligible_workers"
		return res, nil
	}
	if len(slots) == 0 {
		res.Status = solver.StatusOptimal.String()
		return res, nil
	}

	scores := make([][]float64, len(eligible))
	for w, worker := range eligible {
		scores[w] = make([]float64, len(slots))
		penalty := PriorityPenalty(worker)
		for s, slot := range slots {
			scores[w][s] = Score(worker, slot.Task) + penalty
		}
	}

	m := buildDayModel(eligible, slots, scores)

	solveCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	sol, err := o.solver.Solve(solveCtx, m.problem)
	res.SolveTime = time.Since(start)
	if err != nil {
		return DayResult{}, &DayError{Date: key, Err: err}
	}
	switch sol.Status {
	case solver.StatusOptimal, solver.StatusFeasible:
	default:
		return DayResult{}, &DayError{Date: key, Err: fmt.Errorf("solver reported %s for a trivially feasible model", sol.Status)}
	}

	res.Assignments = m.extract(sol.Values)
	res.Objective = sol.Objective
	res.Status = sol.Status.String()

	o.log.Debugw("day optimized", map[string]any{
		"date":      key,
		"tasks":     len(slots),
		"eligible":  len(eligible),
		"assigned":  res.AssignedCount(),
		"objective": res.Objective,
		"status":    res.Status,
	})
	return res, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
