package dispersion

const (
	// DefaultStdDev is the isotropic shot pattern spread in feet, roughly a
	// tour player's short iron.
	DefaultStdDev = 20.0

	// DefaultBatchSize is the number of shots drawn per offset.
	DefaultBatchSize = 100000
)

func DefaultBaselineParams() BaselineParams {
	return BaselineParams{
		FloorDistance: 1.0,
		Coefficient:   0.65,
	}
}
