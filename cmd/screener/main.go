package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "screener",
		Short:        "Curve stable pool yield screener",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter stable pools by total APY and USD total",
		RunE:  runFilter,
	}

	filterCmd.Flags().String("pools", "./data/all-pools.json", "all-pools snapshot path")
	filterCmd.Flags().String("gauges", "./data/all-gauges.json", "gauges snapshot path")
	filterCmd.Flags().Float64("min-apy", 7.0, "minimum total APY percent")
	filterCmd.Flags().Float64("min-usd-total", 1_000_000.0, "minimum pool USD total")
	filterCmd.Flags().StringSlice("exclude", []string{"btc", "eth"}, "name substrings to exclude (comma-separated)")
	filterCmd.Flags().String("out", "./data/high_apy_stable_pools.json", "output report path, empty to skip")
	filterCmd.Flags().Int("top", 0, "limit console listing to top N pools, 0 means all")
	filterCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(filterCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "List stable pools with non-zero total APY, ignoring thresholds",
		RunE:  runInspect,
	}

	inspectCmd.Flags().String("pools", "./data/all-pools.json", "all-pools snapshot path")
	inspectCmd.Flags().String("gauges", "./data/all-gauges.json", "gauges snapshot path")
	inspectCmd.Flags().StringSlice("exclude", []string{"btc", "eth"}, "name substrings to exclude (comma-separated)")
	inspectCmd.Flags().Int("top", 10, "limit listing to top N pools, 0 means all")
	inspectCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(inspectCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
