package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fairway-labs/shotsim/internal/config"
	"github.com/fairway-labs/shotsim/internal/dispersion"
	"github.com/fairway-labs/shotsim/internal/report"
	"github.com/fairway-labs/shotsim/internal/utils/logger"
)

func main() {
	jsonOut := flag.Bool("json", false, "print sweep results as JSON instead of a terminal plot")
	flag.Parse()

	logger.Init()
	log.Info().Msg("Starting sensitivity sweep...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	opts := []dispersion.RunnerOption{
		dispersion.WithStdDev(cfg.StdDev),
		dispersion.WithBatchSize(cfg.BatchSize),
	}
	if cfg.RandomSeed != 0 {
		opts = append(opts, dispersion.WithSeed(cfg.RandomSeed))
	}

	runner, err := dispersion.NewRunner(opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure simulation")
	}

	points, err := runner.Run(cfg.OffsetRange, cfg.NumSteps)
	if err != nil {
		log.Fatal().Err(err).Msg("sensitivity sweep failed")
	}

	if *jsonOut {
		out, err := report.PointsJSON(points)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode sweep results")
		}
		fmt.Println(out)
		return
	}

	title := fmt.Sprintf("Proximity and SG Baseline Sensitivity to Target (stdev %g ft, %d shots per offset)",
		cfg.StdDev, cfg.BatchSize)
	report.PlotSensitivityTerminal(points, title)

	log.Info().
		Float64("offsetRange", cfg.OffsetRange).
		Int("numSteps", cfg.NumSteps).
		Msg("Sensitivity sweep complete")
}
