package health

// EngineInfo exposes the scoring parameters reported by the health probe.
type EngineInfo interface {
	Dimension() int
	Lambda() float64
	PsiThreshold() float64
}
