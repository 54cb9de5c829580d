// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	SimulationEnvConfig
	ReportEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SimulationEnvConfig holds the sampling and sweep parameters. A RandomSeed
// of 0 means unseeded: every run draws a fresh clock-derived seed.
type SimulationEnvConfig struct {
	StdDev        float64   `env:"STD_DEV" envDefault:"20"`
	BatchSize     int       `env:"BATCH_SIZE" envDefault:"100000"`
	OffsetRange   float64   `env:"OFFSET_RANGE" envDefault:"30"`
	NumSteps      int       `env:"NUM_STEPS" envDefault:"100"`
	RandomSeed    uint64    `env:"RANDOM_SEED" envDefault:"0"`
	TargetOffsets []float64 `env:"TARGET_OFFSETS" envDefault:"0,10,20,30"`
}

// ReportEnvConfig configures terminal report rendering.
type ReportEnvConfig struct {
	HistogramBins int    `env:"HISTOGRAM_BINS" envDefault:"100"`
	Environment   string `env:"ENVIRONMENT" envDefault:"dev"`
}
