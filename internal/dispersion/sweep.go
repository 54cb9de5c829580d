package dispersion

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/fairway-labs/shotsim/internal/utils/logger"
)

// Runner orchestrates the sampler and baseline across aim offsets. Every run
// is stateless: batches are drawn fresh, reduced, and returned in ascending
// offset order.
type Runner struct {
	baseline  BaselineParams
	stdDev    float64
	cov       *mat.SymDense
	batchSize int
	seed      uint64

	scorer *Baseline
}

type RunnerOption func(*Runner)

func WithStdDev(stdDev float64) RunnerOption {
	return func(r *Runner) {
		r.stdDev = stdDev
	}
}

func WithCovariance(cov *mat.SymDense) RunnerOption {
	return func(r *Runner) {
		r.cov = cov
	}
}

func WithBatchSize(n int) RunnerOption {
	return func(r *Runner) {
		r.batchSize = n
	}
}

func WithSeed(seed uint64) RunnerOption {
	return func(r *Runner) {
		r.seed = seed
	}
}

func WithBaseline(params BaselineParams) RunnerOption {
	return func(r *Runner) {
		r.baseline = params
	}
}

func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		baseline:  DefaultBaselineParams(),
		stdDev:    DefaultStdDev,
		batchSize: DefaultBatchSize,
		seed:      uint64(time.Now().UnixNano()),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.batchSize < 1 {
		return nil, fmt.Errorf("%w: batch size must be at least 1, got %d", ErrInvalidParameter, r.batchSize)
	}
	if r.cov == nil && (!(r.stdDev > 0) || math.IsInf(r.stdDev, 0)) {
		return nil, fmt.Errorf("%w: standard deviation must be positive and finite, got %v", ErrInvalidParameter, r.stdDev)
	}

	scorer, err := NewBaseline(WithBaselineParams(r.baseline))
	if err != nil {
		return nil, err
	}
	r.scorer = scorer

	return r, nil
}

// Run sweeps numSteps offsets evenly spaced over [0, offsetRange], both
// endpoints included, and reduces each offset's batch to mean and median
// proximity and score. Offsets run in parallel; each owns a source derived
// from the runner seed so results stay reproducible regardless of
// scheduling. Any offset failing aborts the whole sweep.
func (r *Runner) Run(offsetRange float64, numSteps int) ([]Point, error) {
	if numSteps < 2 {
		return nil, fmt.Errorf("%w: num steps must be at least 2, got %d", ErrInvalidParameter, numSteps)
	}
	if offsetRange < 0 || math.IsNaN(offsetRange) || math.IsInf(offsetRange, 0) {
		return nil, fmt.Errorf("%w: offset range must be finite and non-negative, got %v", ErrInvalidParameter, offsetRange)
	}

	logger.Sugar().Infow("Running sensitivity sweep",
		"offsetRange", offsetRange, "numSteps", numSteps, "batchSize", r.batchSize)

	startTime := time.Now()
	offsets := floats.Span(make([]float64, numSteps), 0, offsetRange)

	points := make([]Point, numSteps)
	errs := make([]error, numSteps)

	var wg sync.WaitGroup
	for i, offset := range offsets {
		wg.Add(1)
		go func(i int, offset float64) {
			defer wg.Done()
			pt, _, _, _, err := r.measure(offset, r.offsetSeed(i))
			points[i], errs[i] = pt, err
		}(i, offset)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	log.Debug().Msgf("Swept %d offsets over [0, %g] in %v", numSteps, offsetRange, time.Since(startTime))
	return points, nil
}

// RunDiscrete measures an explicit set of offsets and keeps the full batch
// per offset for distributional comparison. Results follow the input order.
func (r *Runner) RunDiscrete(offsets []float64) ([]Distribution, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: at least one offset required", ErrInvalidParameter)
	}

	distributions := make([]Distribution, len(offsets))
	for i, offset := range offsets {
		if math.IsNaN(offset) || math.IsInf(offset, 0) {
			return nil, fmt.Errorf("%w: offset must be finite, got %v", ErrInvalidParameter, offset)
		}

		pt, shots, prox, scores, err := r.measure(offset, r.offsetSeed(i))
		if err != nil {
			return nil, err
		}

		distributions[i] = Distribution{
			Point:       pt,
			Shots:       shots,
			Proximities: prox,
			Scores:      scores,
		}
		log.Debug().Float64("offset", offset).
			Float64("meanProximity", pt.MeanProximity).
			Float64("meanScore", pt.MeanScore).
			Msgf("Measured distribution for offset %g", offset)
	}

	return distributions, nil
}

// measure draws one batch at the given offset and reduces it.
func (r *Runner) measure(offset float64, seed uint64) (Point, *mat.Dense, []float64, []float64, error) {
	sampler, err := NewSampler(SamplerConfig{
		StdDev:     r.stdDev,
		Covariance: r.cov,
		Seed:       seed,
	})
	if err != nil {
		return Point{}, nil, nil, nil, err
	}

	shots, err := sampler.SampleShots([]float64{offset, 0}, r.batchSize)
	if err != nil {
		return Point{}, nil, nil, nil, err
	}

	prox := Proximity(shots)
	scores, err := r.scorer.ScoreBatch(prox)
	if err != nil {
		return Point{}, nil, nil, nil, err
	}

	pt := Point{
		Offset:          offset,
		MeanProximity:   stat.Mean(prox, nil),
		MedianProximity: median(prox),
		MeanScore:       stat.Mean(scores, nil),
		MedianScore:     median(scores),
	}
	return pt, shots, prox, scores, nil
}

// offsetSeed derives the per-offset source seed. The +1 keeps an explicit
// runner seed of 0 from colliding with the sampler's clock fallback.
func (r *Runner) offsetSeed(i int) uint64 {
	return r.seed + uint64(i) + 1
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	slices.Sort(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
