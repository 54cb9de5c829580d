package dispersion

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func mustSampler(t *testing.T, cfg SamplerConfig) *Sampler {
	t.Helper()
	s, err := NewSampler(cfg)
	if err != nil {
		t.Fatalf("new sampler: %v", err)
	}
	return s
}

func TestSampleShots_Dimensions(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 10, Seed: 1})

	shots, err := s.SampleShots(nil, 5)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}
	rows, cols := shots.Dims()
	if rows != 5 || cols != 2 {
		t.Fatalf("expected 5×2 batch, got %d×%d", rows, cols)
	}
}

func TestSampleShots_ZeroBatch(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 10, Seed: 1})

	shots, err := s.SampleShots(nil, 0)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}
	if prox := Proximity(shots); len(prox) != 0 {
		t.Fatalf("expected empty proximity for empty batch, got %v", prox)
	}
}

func TestSampleShots_NegativeBatch(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 10, Seed: 1})

	if _, err := s.SampleShots(nil, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSampleShots_BadMean(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 10, Seed: 1})

	if _, err := s.SampleShots([]float64{1, 2, 3}, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestNewSampler_InvalidStdDev(t *testing.T) {
	for _, stdDev := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewSampler(SamplerConfig{StdDev: stdDev}); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("stddev %v: expected ErrInvalidParameter, got %v", stdDev, err)
		}
	}
}

func TestNewSampler_BadCovarianceShape(t *testing.T) {
	cov := mat.NewSymDense(3, nil)
	if _, err := NewSampler(SamplerConfig{Covariance: cov}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSampleShots_NotPositiveDefinite(t *testing.T) {
	// Off-diagonal exceeds the diagonal, so the matrix has a negative
	// eigenvalue and cannot back a normal distribution.
	cov := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	s := mustSampler(t, SamplerConfig{Covariance: cov, Seed: 1})

	if _, err := s.SampleShots(nil, 10); !errors.Is(err, ErrNotPositiveDefinite) {
		t.Fatalf("expected ErrNotPositiveDefinite, got %v", err)
	}
}

func TestProximity_ZeroVector(t *testing.T) {
	shots := mat.NewDense(1, 2, []float64{0, 0})
	prox := Proximity(shots)
	if len(prox) != 1 || prox[0] != 0 {
		t.Fatalf("expected [0], got %v", prox)
	}
}

func TestProximity_KnownValues(t *testing.T) {
	shots := mat.NewDense(3, 2, []float64{3, 4, -3, 4, 0, -5})
	prox := Proximity(shots)
	for i, p := range prox {
		if math.Abs(p-5) > 1e-12 {
			t.Fatalf("proximity[%d] = %v, want 5", i, p)
		}
	}
}

func TestProximity_NonNegative(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 20, Seed: 7})
	shots, err := s.SampleShots([]float64{-15, 3}, 1000)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}
	prox := Proximity(shots)
	if len(prox) != 1000 {
		t.Fatalf("expected 1000 proximities, got %d", len(prox))
	}
	for i, p := range prox {
		if p < 0 {
			t.Fatalf("proximity[%d] = %v, want >= 0", i, p)
		}
	}
}

func TestSampleShots_Reproducible(t *testing.T) {
	a := mustSampler(t, SamplerConfig{StdDev: 20, Seed: 42})
	b := mustSampler(t, SamplerConfig{StdDev: 20, Seed: 42})

	shotsA, err := a.SampleShots([]float64{10, 0}, 100)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}
	shotsB, err := b.SampleShots([]float64{10, 0}, 100)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}
	if !mat.Equal(shotsA, shotsB) {
		t.Fatal("identical seeds produced different batches")
	}
}

func TestSampleShots_RayleighConvergence(t *testing.T) {
	// With the mean at the target, proximity follows a Rayleigh distribution
	// with scale equal to the shot pattern stddev.
	const stdDev = 20.0
	const n = 200000

	s := mustSampler(t, SamplerConfig{StdDev: stdDev, Seed: 11})
	shots, err := s.SampleShots(nil, n)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}

	empirical := stat.Mean(Proximity(shots), nil)
	// distuv has no Rayleigh type; Weibull with K = 2 and Lambda = σ√2 is the
	// Rayleigh distribution with scale σ, so its mean is identical.
	expected := distuv.Weibull{K: 2, Lambda: stdDev * math.Sqrt2}.Mean()

	if math.Abs(empirical-expected) > 0.3 {
		t.Fatalf("empirical mean proximity %v too far from Rayleigh mean %v", empirical, expected)
	}
}

func TestSampleShots_MeanShift(t *testing.T) {
	s := mustSampler(t, SamplerConfig{StdDev: 20, Seed: 3})
	shots, err := s.SampleShots([]float64{30, 0}, 100000)
	if err != nil {
		t.Fatalf("sample shots: %v", err)
	}

	rows, _ := shots.Dims()
	xs := make([]float64, rows)
	for i := range xs {
		xs[i] = shots.At(i, 0)
	}
	if got := stat.Mean(xs, nil); math.Abs(got-30) > 0.5 {
		t.Fatalf("empirical mean x %v too far from 30", got)
	}
}
