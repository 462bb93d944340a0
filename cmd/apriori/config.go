package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apriori/rules"
)

// Slider bounds the original analysis UI exposes; the shell clamps to
// these before invoking the core, which still guards its own (0,1].
const (
	minSupportFloor    = 0.01
	minSupportCeil     = 0.1
	minConfidenceFloor = 0.1
	minConfidenceCeil  = 1.0
)

// Config is the CLI configuration: flag values layered over an optional
// YAML file layered over the defaults below.
type Config struct {
	CSV           string  `yaml:"csv"`
	MinSupport    float64 `yaml:"min_support"`
	MinConfidence float64 `yaml:"min_confidence"`
	Metric        string  `yaml:"metric"`
	TopN          int     `yaml:"top_n"`
	DotOut        string  `yaml:"dot_out"`
}

// defaultConfig mirrors the original analysis defaults: support 0.02,
// confidence 0.4, top-10 items.
func defaultConfig() Config {
	return Config{
		CSV:           "cafe_order_dataset.csv",
		MinSupport:    0.02,
		MinConfidence: 0.4,
		Metric:        "confidence",
		TopN:          10,
	}
}

// loadConfig overlays the YAML file at path onto cfg in place.
func loadConfig(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// clamp pulls the thresholds into the UI slider bounds, logging every
// adjustment so a surprising result is traceable to its cause.
func (c *Config) clamp(logger *logrus.Entry) {
	clampFloat := func(name string, v, floor, ceil float64) float64 {
		switch {
		case v < floor:
			logger.WithFields(logrus.Fields{"param": name, "given": v, "used": floor}).Warn("threshold clamped")
			return floor
		case v > ceil:
			logger.WithFields(logrus.Fields{"param": name, "given": v, "used": ceil}).Warn("threshold clamped")
			return ceil
		default:
			return v
		}
	}

	c.MinSupport = clampFloat("min_support", c.MinSupport, minSupportFloor, minSupportCeil)
	c.MinConfidence = clampFloat("min_confidence", c.MinConfidence, minConfidenceFloor, minConfidenceCeil)
}

// metric resolves the configured metric name.
func (c *Config) metric() (rules.Metric, error) {
	switch c.Metric {
	case "", "confidence":
		return rules.Confidence, nil
	case "lift":
		return rules.Lift, nil
	case "support":
		return rules.Support, nil
	default:
		return 0, fmt.Errorf("config: unknown metric %q (confidence, lift or support)", c.Metric)
	}
}
