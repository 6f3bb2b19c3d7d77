package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	diveknn "go-diveknn"
)

// Config holds the settings of one classifier run.
type Config struct {
	// Data is the path of the dive file.
	Data string `yaml:"data"`
	// K is the number of neighbours that vote. Default: 1.
	K int `yaml:"k"`
	// Metric names the distance metric. Default: "temperature".
	Metric string `yaml:"metric"`
	// TieBreak names the tie-break policy. Default: "first".
	TieBreak string `yaml:"tie_break"`
	// Seed feeds the "random" tie-break policy.
	Seed int64 `yaml:"seed"`
	// Workers is the number of goroutines evaluating records. Default: 1.
	Workers int `yaml:"workers"`

	Report ReportConfig `yaml:"report"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	Color     bool   `yaml:"color"`
	Confusion bool   `yaml:"confusion"`
	Plot      string `yaml:"plot"`
	Heatmap   string `yaml:"heatmap"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		K:        1,
		Metric:   diveknn.MetricTemperature,
		TieBreak: diveknn.TieBreakFirst,
		Seed:     1,
		Workers:  1,
		Report: ReportConfig{
			Color: true,
		},
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the classifier cannot run with.
func (c Config) Validate() error {
	if c.K < diveknn.MinK {
		return &diveknn.InvalidConfigError{Field: "k", Value: c.K, Reason: fmt.Sprintf("k must be at least %d", diveknn.MinK)}
	}
	if c.Metric != "" && !slices.Contains(diveknn.MetricNames, c.Metric) {
		return &diveknn.InvalidConfigError{Field: "metric", Value: c.Metric, Reason: "unknown distance metric"}
	}
	if _, err := diveknn.NewTieBreak(c.TieBreak, c.Seed); err != nil {
		return err
	}
	if c.Workers < 1 {
		return &diveknn.InvalidConfigError{Field: "workers", Value: c.Workers, Reason: "workers must be at least 1"}
	}
	return nil
}

// Options translates the configuration into classifier options.
func (c Config) Options() ([]diveknn.Option, error) {
	tieBreak, err := diveknn.NewTieBreak(c.TieBreak, c.Seed)
	if err != nil {
		return nil, err
	}
	return []diveknn.Option{
		diveknn.WithMetric(c.Metric),
		diveknn.WithTieBreak(tieBreak),
		diveknn.WithWorkers(c.Workers),
	}, nil
}
