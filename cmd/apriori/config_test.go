package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apriori/rules"
)

// TestLoadConfig_OverlaysYAML: file values replace defaults, absent keys keep them.
func TestLoadConfig_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv: orders.csv\nmin_support: 0.05\nmetric: lift\n"), 0o644))

	cfg := defaultConfig()
	require.NoError(t, loadConfig(path, &cfg))

	assert.Equal(t, "orders.csv", cfg.CSV)
	assert.Equal(t, 0.05, cfg.MinSupport)
	assert.Equal(t, "lift", cfg.Metric)
	assert.Equal(t, 0.4, cfg.MinConfidence, "absent key keeps the default")
	assert.Equal(t, 10, cfg.TopN)
}

// TestLoadConfig_BadFile surfaces read and parse errors.
func TestLoadConfig_BadFile(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("csv: [unclosed"), 0o644))
	assert.Error(t, loadConfig(path, &cfg))
}

// TestClamp pulls thresholds into the slider bounds and leaves in-range
// values alone.
func TestClamp(t *testing.T) {
	logger := logrus.New()
	entry := logger.WithField("component", "test")

	cfg := Config{MinSupport: 0.5, MinConfidence: 0.01}
	cfg.clamp(entry)
	assert.Equal(t, minSupportCeil, cfg.MinSupport)
	assert.Equal(t, minConfidenceFloor, cfg.MinConfidence)

	cfg = Config{MinSupport: 0.02, MinConfidence: 0.4}
	cfg.clamp(entry)
	assert.Equal(t, 0.02, cfg.MinSupport)
	assert.Equal(t, 0.4, cfg.MinConfidence)
}

// TestMetric resolves names, defaults blank to confidence, rejects junk.
func TestMetric(t *testing.T) {
	for name, want := range map[string]rules.Metric{
		"":           rules.Confidence,
		"confidence": rules.Confidence,
		"lift":       rules.Lift,
		"support":    rules.Support,
	} {
		cfg := Config{Metric: name}
		got, err := cfg.metric()
		require.NoError(t, err, "metric %q", name)
		assert.Equal(t, want, got, "metric %q", name)
	}

	cfg := Config{Metric: "zhang"}
	_, err := cfg.metric()
	assert.Error(t, err)
}
