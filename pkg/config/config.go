// Package config loads library configuration from viper-managed settings
// and environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for an analyzer.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Baseline configuration
	Baseline BaselineConfig `mapstructure:"baseline"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalysisConfig holds pipeline parameters
type AnalysisConfig struct {
	Normalization string  `mapstructure:"normalization"` // raw, log
	SegmentSize   int     `mapstructure:"segment_size"`  // in runes
	Phases        int     `mapstructure:"phases"`
	TopN          int     `mapstructure:"top_n"`
	Sigma         float64 `mapstructure:"sigma"` // RBF width, 0 = auto
}

// BaselineConfig holds an optional inline baseline. When Activity is empty
// the analyzer derives a baseline from the analyzed text's own segments.
type BaselineConfig struct {
	Activity []float64 `mapstructure:"activity"`
}

// Load loads configuration from viper settings and environment variables
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Analysis defaults
	viper.SetDefault("analysis.normalization", "raw")
	viper.SetDefault("analysis.segment_size", 200)
	viper.SetDefault("analysis.phases", 2)
	viper.SetDefault("analysis.top_n", 3)
	viper.SetDefault("analysis.sigma", 0.0)
}

// overrideWithEnv overrides config with environment variables
func overrideWithEnv(config *Config) {
	if level := os.Getenv("NETIVOT_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if method := os.Getenv("NETIVOT_NORMALIZATION"); method != "" {
		config.Analysis.Normalization = method
	}
}
