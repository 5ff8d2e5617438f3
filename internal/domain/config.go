package domain

// EngineConfig holds the fixed coherence engine constants. They are set
// once at process start and never change for the process lifetime.
type EngineConfig struct {
	// ReferenceVector is the invariant point of comparison. Its length
	// defines the required intent vector dimension.
	ReferenceVector []float64
	// Lambda weighs how strongly the entropy penalty reduces the index.
	Lambda float64
	// PsiThreshold is the inclusive gate boundary in [0,1].
	PsiThreshold float64
	// DivergenceFloor keeps the entropy penalty finite when a vector
	// component is exactly zero.
	DivergenceFloor float64
}

// DefaultEngineConfig returns the reference configuration (dimension 5).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ReferenceVector: []float64{0.92, 0.15, 0.60, 0.88, 0.05},
		Lambda:          0.27,
		PsiThreshold:    0.85,
		DivergenceFloor: 1e-10,
	}
}
