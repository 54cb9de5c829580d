// Package report renders sweep output for the terminal and encodes it for
// downstream plotting tools. It only consumes data the simulation returns.
package report

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"gonum.org/v1/gonum/floats"

	"github.com/fairway-labs/shotsim/internal/dispersion"
)

const maxBarWidth = 50

// DefaultHistogramBins matches the resolution used in the original study.
const DefaultHistogramBins = 100

// PlotHistogramTerminal prints a horizontal-bar histogram of values.
func PlotHistogramTerminal(values []float64, bins int, title string) {
	if len(values) == 0 || bins < 1 {
		fmt.Printf("\n%s: no data\n", title)
		return
	}

	minValue := floats.Min(values)
	maxValue := floats.Max(values)
	binWidth := (maxValue - minValue) / float64(bins)

	counts := make([]int, bins)
	if binWidth == 0 {
		counts[0] = len(values)
	} else {
		for _, v := range values {
			idx := int((v - minValue) / binWidth)
			if idx >= bins {
				idx = bins - 1
			}
			counts[idx]++
		}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	fmt.Printf("\n%s:\n", title)
	fmt.Println("Bin Start | Count    | Bar Chart")
	fmt.Println("----------|----------|" + strings.Repeat("-", maxBarWidth))

	for i, c := range counts {
		barWidth := 0
		if maxCount > 0 {
			barWidth = c * maxBarWidth / maxCount
		}
		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 && c > 0 {
			bar = "▏"
		}
		fmt.Printf("%9.2f | %8d | %s\n", minValue+float64(i)*binWidth, c, bar)
	}

	fmt.Printf("\nScale: Min=%.4f, Max=%.4f, Samples=%d\n", minValue, maxValue, len(values))
}

// PlotSensitivityTerminal prints the sweep as a table with a bar per offset
// so the shape of the sensitivity curve is visible without a plotting tool.
func PlotSensitivityTerminal(points []dispersion.Point, title string) {
	if len(points) == 0 {
		fmt.Printf("\n%s: no data\n", title)
		return
	}

	means := make([]float64, len(points))
	for i, pt := range points {
		means[i] = pt.MeanProximity
	}
	minMean := floats.Min(means)
	maxMean := floats.Max(means)

	fmt.Printf("\n%s:\n", title)
	fmt.Println("  Offset | Mean Prox | Med Prox | Mean SG | Med SG  | Mean Proximity Curve")
	fmt.Println("---------|-----------|----------|---------|---------|" + strings.Repeat("-", maxBarWidth))

	for _, pt := range points {
		var barWidth int
		if maxMean != minMean {
			barWidth = int((pt.MeanProximity - minMean) / (maxMean - minMean) * float64(maxBarWidth))
		} else {
			barWidth = maxBarWidth / 2
		}
		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}
		fmt.Printf("%8.2f | %9.2f | %8.2f | %7.4f | %7.4f | %s\n",
			pt.Offset, pt.MeanProximity, pt.MedianProximity, pt.MeanScore, pt.MedianScore, bar)
	}
}

// PointsJSON encodes the reduced sweep statistics.
func PointsJSON(points []dispersion.Point) (string, error) {
	out, err := sonic.MarshalString(points)
	if err != nil {
		return "", fmt.Errorf("encode sweep points: %w", err)
	}
	return out, nil
}

// SummariesJSON encodes the per-offset reductions of a discrete run, leaving
// the raw batches out.
func SummariesJSON(distributions []dispersion.Distribution) (string, error) {
	points := make([]dispersion.Point, len(distributions))
	for i, d := range distributions {
		points[i] = d.Point
	}
	return PointsJSON(points)
}
