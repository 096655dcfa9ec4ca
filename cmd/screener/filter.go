package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"curveScope/internal/aggregate"
	"curveScope/internal/config"
	"curveScope/internal/report"
	"curveScope/internal/snapshot"
)

func runFilter(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFilter(cfgFile, cmd.Flags())
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

	criteria := aggregate.Criteria{
		MinApy:       cfg.MinApy,
		MinUSDTotal:  cfg.MinUSDTotal,
		ExcludeNames: cfg.ExcludeNames,
	}

	logger.Info("filter start",
		zap.String("pools", cfg.PoolsPath),
		zap.String("gauges", cfg.GaugesPath),
		zap.Float64("min_apy", criteria.MinApy),
		zap.Float64("min_usd_total", criteria.MinUSDTotal),
		zap.Strings("exclude", criteria.ExcludeNames),
	)

	summaries, err := aggregate.Aggregate(pools, gauges, criteria)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	aggregate.SortByTotalApy(summaries)

	console := &report.ConsoleReport{
		Out:    cmd.OutOrStdout(),
		MinApy: criteria.MinApy,
		Top:    cfg.Top,
	}
	if err := console.Emit(summaries); err != nil {
		return fmt.Errorf("console report: %w", err)
	}

	if cfg.Out != "" && len(summaries) > 0 {
		artifact := report.NewJSONReport(cfg.Out)
		if err := artifact.Emit(summaries); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written",
			zap.String("out", cfg.Out),
			zap.Int("pools", len(summaries)),
		)
	}

	return nil
}
