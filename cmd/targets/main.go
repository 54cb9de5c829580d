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
	jsonOut := flag.Bool("json", false, "print per-target summaries as JSON instead of histograms")
	flag.Parse()

	logger.Init()
	log.Info().Msg("Starting target comparison...")

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

	distributions, err := runner.RunDiscrete(cfg.TargetOffsets)
	if err != nil {
		log.Fatal().Err(err).Msg("target comparison failed")
	}

	if *jsonOut {
		out, err := report.SummariesJSON(distributions)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode target summaries")
		}
		fmt.Println(out)
		return
	}

	for _, d := range distributions {
		report.PlotHistogramTerminal(d.Proximities, cfg.HistogramBins,
			fmt.Sprintf("Proximity aiming %g ft away (mean %.2f ft, median %.2f ft)",
				d.Offset, d.MeanProximity, d.MedianProximity))
		report.PlotHistogramTerminal(d.Scores, cfg.HistogramBins,
			fmt.Sprintf("SG baseline aiming %g ft away (mean %.4f, median %.4f)",
				d.Offset, d.MeanScore, d.MedianScore))
	}

	log.Info().
		Floats64("targetOffsets", cfg.TargetOffsets).
		Float64("stdDev", cfg.StdDev).
		Msg("Target comparison complete")
}
