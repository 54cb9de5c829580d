// Package dispersion simulates golf shot dispersion and the sensitivity of
// proximity and strokes gained outcomes to shifting the aim point.
package dispersion

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// SamplerConfig holds the dispersion model with documented defaults.
// Covariance, when set, takes precedence over StdDev. A zero StdDev with no
// covariance falls back to DefaultStdDev; a zero Seed derives one from the
// clock.
type SamplerConfig struct {
	StdDev     float64       // isotropic spread in feet, covariance = StdDev² · I
	Covariance *mat.SymDense // full 2×2 covariance, overrides StdDev
	Seed       uint64        // seed for the owned random source
}

// Sampler draws batches of 2D shot displacements from a bivariate normal
// distribution. Each Sampler owns its random source, so seeded samplers are
// reproducible and independent samplers are safe to run in parallel.
type Sampler struct {
	cov *mat.SymDense
	src rand.Source
}

func NewSampler(cfg SamplerConfig) (*Sampler, error) {
	cov := cfg.Covariance
	if cov == nil {
		stdDev := cfg.StdDev
		if stdDev == 0 {
			stdDev = DefaultStdDev
		}
		if stdDev < 0 || math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
			return nil, fmt.Errorf("%w: standard deviation must be positive and finite, got %v", ErrInvalidParameter, cfg.StdDev)
		}
		variance := stdDev * stdDev
		cov = mat.NewSymDense(2, []float64{variance, 0, 0, variance})
	} else if r, c := cov.Dims(); r != 2 || c != 2 {
		return nil, fmt.Errorf("%w: covariance must be 2×2, got %d×%d", ErrInvalidParameter, r, c)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Sampler{
		cov: cov,
		src: rand.NewPCG(seed, seed),
	}, nil
}

// SampleShots draws n independent displacement vectors around mean, one shot
// per row. A nil mean aims at the target exactly; n == 0 yields an empty
// batch so the sweep can compose over degenerate configurations.
func (s *Sampler) SampleShots(mean []float64, n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: batch size must be non-negative, got %d", ErrInvalidParameter, n)
	}
	if mean == nil {
		mean = []float64{0, 0}
	}
	if len(mean) != 2 {
		return nil, fmt.Errorf("%w: mean vector must have 2 components, got %d", ErrInvalidParameter, len(mean))
	}

	normal, ok := distmv.NewNormal(mean, s.cov, s.src)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, mat.Formatted(s.cov, mat.Squeeze()))
	}

	if n == 0 {
		return &mat.Dense{}, nil
	}

	shots := mat.NewDense(n, 2, nil)
	row := make([]float64, 2)
	for i := 0; i < n; i++ {
		normal.Rand(row)
		shots.SetRow(i, row)
	}

	return shots, nil
}

// Proximity reduces each shot to its Euclidean distance from the target.
func Proximity(shots *mat.Dense) []float64 {
	if shots == nil {
		return []float64{}
	}

	rows, _ := shots.Dims()
	prox := make([]float64, rows)
	for i := range prox {
		prox[i] = math.Hypot(shots.At(i, 0), shots.At(i, 1))
	}

	return prox
}
