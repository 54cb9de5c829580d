package dispersion

import (
	"fmt"
	"math"
)

// BaselineParams configures the strokes gained baseline curve. The floor
// distance and log coefficient are illustrative approximations, not fitted
// values, so both stay configurable.
type BaselineParams struct {
	FloorDistance float64 // distances at or below this score the floor value
	Coefficient   float64 // slope of the log10 term beyond the floor
}

// Baseline approximates an expected-strokes baseline from proximity. The
// curve is strictly increasing and strictly concave beyond the floor, which
// is what produces the diminishing marginal cost of shifting the aim point.
type Baseline struct {
	params BaselineParams
}

type BaselineOption func(*Baseline)

func WithFloorDistance(d float64) BaselineOption {
	return func(b *Baseline) {
		b.params.FloorDistance = d
	}
}

func WithCoefficient(k float64) BaselineOption {
	return func(b *Baseline) {
		b.params.Coefficient = k
	}
}

func WithBaselineParams(params BaselineParams) BaselineOption {
	return func(b *Baseline) {
		b.params = params
	}
}

func NewBaseline(opts ...BaselineOption) (*Baseline, error) {
	b := &Baseline{
		params: DefaultBaselineParams(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if !(b.params.FloorDistance > 0) || math.IsInf(b.params.FloorDistance, 0) {
		return nil, fmt.Errorf("%w: floor distance must be positive and finite, got %v", ErrInvalidParameter, b.params.FloorDistance)
	}
	if !(b.params.Coefficient > 0) || math.IsInf(b.params.Coefficient, 0) {
		return nil, fmt.Errorf("%w: coefficient must be positive and finite, got %v", ErrInvalidParameter, b.params.Coefficient)
	}

	return b, nil
}

// Score maps a proximity in feet to the baseline expected strokes.
func (b *Baseline) Score(distance float64) (float64, error) {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, fmt.Errorf("%w: distance must be finite and non-negative, got %v", ErrInvalidParameter, distance)
	}
	if distance <= b.params.FloorDistance {
		return 1.0, nil
	}
	return 1.0 + b.params.Coefficient*math.Log10(distance), nil
}

// ScoreBatch applies Score elementwise. An empty batch yields an empty
// result; the first invalid distance aborts the batch.
func (b *Baseline) ScoreBatch(distances []float64) ([]float64, error) {
	scores := make([]float64, len(distances))
	for i, d := range distances {
		s, err := b.Score(d)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return scores, nil
}

func (b *Baseline) Params() BaselineParams {
	return b.params
}
