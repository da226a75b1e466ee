package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kaiyomaru/fieldassign/core/metrics"
)

// PromSink records day optimization outcomes as Prometheus metrics.
type PromSink struct {
	days      *prometheus.CounterVec
	assigned  prometheus.Counter
	solveTime prometheus.Histogram
}

// NewPromSink registers the assignment metrics on the provided registerer.
// If reg is nil, the default registerer is used. Already-registered
// collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	days := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fieldassign_days_total",
		Help: "Total number of optimized days by outcome",
	}, []string{"failed"})
	assigned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fieldassign_assigned_workers_total",
		Help: "Total number of worker-task assignments produced",
	})
	solveTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fieldassign_solve_seconds",
		Help:    "Per-day solver wall time",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(days); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			days = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(assigned); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assigned = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solveTime = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{days: days, assigned: assigned, solveTime: solveTime}, nil
}

// RecordDayResults increments the counters for each optimized day.
func (s *PromSink) RecordDayResults(recs []coremetrics.DayRecord) error {
	for _, r := range recs {
		s.days.WithLabelValues(strconv.FormatBool(r.Failed)).Inc()
		if !r.Failed {
			s.assigned.Add(float64(r.AssignedWorkers))
			s.solveTime.Observe(r.SolveTime.Seconds())
		}
	}
	return nil
}
