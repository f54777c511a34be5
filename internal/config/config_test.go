package config

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "exp", cfg.Integrand)
	assert.Equal(t, "simpson", cfg.Method)
	assert.Positive(t, cfg.Params.Steps)
	assert.Zero(t, cfg.Params.Steps%2, "default steps must suit simpson")
	assert.Equal(t, 64, cfg.Params.Order)
	assert.Nil(t, cfg.Interval)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Integrand = "wifi"
	cfg.Method = "romberg"
	cfg.Params.Rows = 12
	cfg.Params.Atol = 1e-9
	cfg.Interval = &IntervalConfig{A: -1, B: 1}
	cfg.Sweep.Values = []int{4, 8, 12}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	a, b, ok := loaded.Bounds()
	assert.True(t, ok)
	assert.Equal(t, -1.0, a)
	assert.Equal(t, 1.0, b)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, writeFile(path, "integrand: sine\nmethod: gaussian\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sine", cfg.Integrand)
	assert.Equal(t, DefaultSteps, cfg.Params.Steps)
	assert.Equal(t, DefaultOrder, cfg.Params.Order)
}

func TestLoadIntoKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, writeFile(path, "params:\n  seed: 7\n"))

	cfg := GetPreset("wifi", "montecarlo").Resolve()
	require.NoError(t, LoadInto(path, cfg))

	assert.Equal(t, "montecarlo", cfg.Method)
	assert.Equal(t, int64(7), cfg.Params.Seed)
	assert.Equal(t, 100000, cfg.Params.Samples)
	assert.Equal(t, 4, cfg.Sweep.Parallel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeFile(path, "params: [not, a, map\n"))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("wifi", "montecarlo")
	require.NotNil(t, cfg)
	assert.Equal(t, []int{1000, 10000, 100000, 1000000}, cfg.Sweep.Values)

	assert.Nil(t, GetPreset("wifi", "nonexistent"))
	assert.Nil(t, GetPreset("nonexistent", "romberg"))
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("square")
	sort.Strings(presets)
	assert.Equal(t, []string{"simpson", "trapezoid"}, presets)
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestResolve(t *testing.T) {
	cfg := GetPreset("damped", "gaussian").Resolve()

	assert.Equal(t, 64, cfg.Params.Order)
	assert.Equal(t, DefaultSteps, cfg.Params.Steps)
	assert.Equal(t, DefaultParallel, cfg.Sweep.Parallel)
	assert.Zero(t, Presets["damped"]["gaussian"].Params.Steps, "resolve must not mutate the preset")
}
