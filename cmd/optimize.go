package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kaiyomaru/fieldassign/app"
	"github.com/kaiyomaru/fieldassign/config"
	"github.com/kaiyomaru/fieldassign/infra/export"
	"github.com/kaiyomaru/fieldassign/infra/logger"
)

var outPath string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run a one-shot schedule optimization",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the assignment table to this CSV file")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("optimize-command").Errorf("service close: %v", err)
		}
	}()

	res := svc.Optimize(ctx)
	logg := logger.New("optimize-command")
	logg.Infof("run %s: %d days optimized, %d failed", res.RunID, len(res.Days), len(res.Failures))
	for date, msg := range res.Failures {
		logg.Errorf("day %s failed: %s", date, msg)
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, res); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logg.Infof("wrote %s", outPath)
	}

	if len(res.Failures) > 0 {
		return fmt.Errorf("%d days failed to optimize", len(res.Failures))
	}
	return nil
}
