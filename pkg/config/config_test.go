package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "raw", cfg.Analysis.Normalization)
	assert.Equal(t, 200, cfg.Analysis.SegmentSize)
	assert.Equal(t, 2, cfg.Analysis.Phases)
	assert.Equal(t, 3, cfg.Analysis.TopN)
	assert.Zero(t, cfg.Analysis.Sigma)
	assert.Empty(t, cfg.Baseline.Activity)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("analysis.normalization", "log")
	viper.Set("analysis.phases", 4)
	viper.Set("baseline.activity", []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 2})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Analysis.Normalization)
	assert.Equal(t, 4, cfg.Analysis.Phases)
	require.Len(t, cfg.Baseline.Activity, 10)
	assert.Equal(t, 2.0, cfg.Baseline.Activity[9])
}

func TestEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("NETIVOT_LOG_LEVEL", "debug")
	t.Setenv("NETIVOT_NORMALIZATION", "log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "log", cfg.Analysis.Normalization)
}
