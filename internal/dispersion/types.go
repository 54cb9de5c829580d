package dispersion

import "gonum.org/v1/gonum/mat"

// Point holds the reduced statistics for one aim offset.
type Point struct {
	Offset          float64 `json:"offset"`
	MeanProximity   float64 `json:"meanProximity"`
	MedianProximity float64 `json:"medianProximity"`
	MeanScore       float64 `json:"meanScore"`
	MedianScore     float64 `json:"medianScore"`
}

// Distribution carries the full batch behind a Point so callers can inspect
// the shape of the outcome distributions, not just their reductions.
type Distribution struct {
	Point
	Shots       *mat.Dense `json:"-"` // 2D: one shot displacement per row
	Proximities []float64  `json:"proximities"`
	Scores      []float64  `json:"scores"`
}
