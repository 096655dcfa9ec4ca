package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FilterConfig holds configuration for the filter command.
type FilterConfig struct {
	PoolsPath    string
	GaugesPath   string
	MinApy       float64
	MinUSDTotal  float64
	ExcludeNames []string
	Out          string
	Top          int
	LogLevel     string
}

// LoadFilter merges config file, environment variables, and flags into
// FilterConfig.
func LoadFilter(cfgFile string, flags *pflag.FlagSet) (FilterConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return FilterConfig{}, err
	}

	cfg := FilterConfig{
		PoolsPath:    v.GetString("pools"),
		GaugesPath:   v.GetString("gauges"),
		MinApy:       v.GetFloat64("min-apy"),
		MinUSDTotal:  v.GetFloat64("min-usd-total"),
		ExcludeNames: getStringSlice(v, "exclude"),
		Out:          v.GetString("out"),
		Top:          v.GetInt("top"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

// InspectConfig holds configuration for the inspect command.
type InspectConfig struct {
	PoolsPath    string
	GaugesPath   string
	ExcludeNames []string
	Top          int
	LogLevel     string
}

// LoadInspect merges config file, environment variables, and flags into
// InspectConfig.
func LoadInspect(cfgFile string, flags *pflag.FlagSet) (InspectConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return InspectConfig{}, err
	}

	cfg := InspectConfig{
		PoolsPath:    v.GetString("pools"),
		GaugesPath:   v.GetString("gauges"),
		ExcludeNames: getStringSlice(v, "exclude"),
		Top:          v.GetInt("top"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SCREENER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("pools", "./data/all-pools.json")
	v.SetDefault("gauges", "./data/all-gauges.json")
	v.SetDefault("min-apy", 7.0)
	v.SetDefault("min-usd-total", 1_000_000.0)
	v.SetDefault("exclude", []string{"btc", "eth"})
	v.SetDefault("out", "./data/high_apy_stable_pools.json")
	v.SetDefault("top", 0)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	values := v.GetStringSlice(key)
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
