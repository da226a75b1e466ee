// Package app wires configuration, data loading, the optimizer and the
// outward-facing servers into one service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kaiyomaru/fieldassign/api"
	"github.com/kaiyomaru/fieldassign/config"
	"github.com/kaiyomaru/fieldassign/core/assign"
	corelogger "github.com/kaiyomaru/fieldassign/core/logger"
	coremetrics "github.com/kaiyomaru/fieldassign/core/metrics"
	"github.com/kaiyomaru/fieldassign/core/solver"
	"github.com/kaiyomaru/fieldassign/infra/loader"
	"github.com/kaiyomaru/fieldassign/infra/logger"
	"github.com/kaiyomaru/fieldassign/infra/metrics"
	"github.com/kaiyomaru/fieldassign/infra/mqtt"
)

// Service owns the loaded dataset and the schedule optimizer.
type Service struct {
	cfg      *config.Config
	log      corelogger.Logger
	ds       *loader.Dataset
	opt      *assign.ScheduleOptimizer
	notifier *mqtt.Notifier
}

// New loads the dataset and builds the optimizer from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	ds, err := loader.Load(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logg.Infof("loaded %d workers, %d tasks, %d schedule entries",
		len(ds.Workers), len(ds.Tasks), len(ds.Schedule))

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	opt, err := assign.NewScheduleOptimizer(
		ds.Workers, ds.Tasks,
		solver.NewBranchAndBound(),
		cfg.Assign,
		logger.New("optimizer"),
		sink,
	)
	if err != nil {
		return nil, fmt.Errorf("schedule optimizer: %w", err)
	}

	svc := &Service{cfg: cfg, log: logg, ds: ds, opt: opt}
	if cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.notifier = mqtt.NewNotifier(client, cfg.MQTT.TopicPrefix, logger.New("notifier"))
	}
	return svc, nil
}

// Dataset returns the loaded registries and schedule.
func (s *Service) Dataset() *loader.Dataset { return s.ds }

// Optimize runs the whole schedule and fans the results out to the notifier
// when one is configured.
func (s *Service) Optimize(ctx context.Context) assign.ScheduleResult {
	res := s.opt.Optimize(ctx, s.ds.Schedule)
	s.notify(res)
	return res
}

func (s *Service) notify(res assign.ScheduleResult) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyRun(res); err != nil {
		s.log.Errorf("notify run %s: %v", res.RunID, err)
	}
}

// Run serves the HTTP API (and the Prometheus endpoint when enabled) until
// the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    s.cfg.API.Addr,
		Handler: api.NewServer(s.ds, s.opt, logger.New("api"), s.notify).Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("serving API on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases external connections.
func (s *Service) Close() error {
	if s.notifier != nil {
		s.notifier.Close()
	}
	return nil
}
