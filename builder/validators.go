// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

// validateDims ensures rows and cols are both ≥ MinGridDim.
// Complexity: O(1).
func validateDims(method string, rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return wrapf(method, ErrTooSmall, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	// written as a negation so NaN is rejected too
	if !(p >= MinProbability && p <= MaxProbability) {
		return wrapf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %v", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateRNG ensures a stochastic constructor has a random source.
// Complexity: O(1).
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return wrapf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
