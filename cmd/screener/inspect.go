package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"curveScope/internal/aggregate"
	"curveScope/internal/config"
	"curveScope/internal/model"
	"curveScope/internal/report"
	"curveScope/internal/snapshot"
)

func runInspect(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadInspect(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.PoolsPath == "" {
		return fmt.Errorf("pools path is required")
	}
	if cfg.GaugesPath == "" {
		return fmt.Errorf("gauges path is required")
	}

	pools, err := snapshot.LoadPools(cfg.PoolsPath, logger)
	if err != nil {
		return fmt.Errorf("load pools: %w", err)
	}
	gauges, err := snapshot.LoadGauges(cfg.GaugesPath, logger)
	if err != nil {
		return fmt.Errorf("load gauges: %w", err)
	}

	// Degenerate thresholds admit every stable pool; the non-zero cut
	// happens after aggregation.
	criteria := aggregate.Criteria{
		MinApy:       0,
		MinUSDTotal:  0,
		ExcludeNames: cfg.ExcludeNames,
	}

	summaries, err := aggregate.Aggregate(pools, gauges, criteria)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	summaries = lo.Filter(summaries, func(s model.QualifiedPoolSummary, _ int) bool {
		return s.TotalApy > 0
	})
	aggregate.SortByTotalApy(summaries)

	logger.Info("inspect",
		zap.Int("pools", len(pools)),
		zap.Int("non_zero_apy", len(summaries)),
	)

	console := &report.ConsoleReport{
		Out: cmd.OutOrStdout(),
		Top: cfg.Top,
	}
	if err := console.Emit(summaries); err != nil {
		return fmt.Errorf("console report: %w", err)
	}

	return nil
}
