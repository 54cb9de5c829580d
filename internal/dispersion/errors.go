package dispersion

import "errors"

var (
	// ErrInvalidParameter reports a precondition violation on a simulation
	// input. Invalid inputs are never clamped or substituted with defaults,
	// since that would skew the downstream statistics silently.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotPositiveDefinite reports a covariance matrix that cannot back a
	// bivariate normal distribution.
	ErrNotPositiveDefinite = errors.New("covariance matrix is not positive-definite")
)
