package health

import "context"

// Status represents the service health status.
type Status string

// Healthy indicates the scoring engine is loaded and serving.
const Healthy Status = "ok"

// Report describes the running engine for liveness probes. Exposing the
// scoring parameters lets operators confirm which invariant a deployment
// enforces without submitting an intent.
type Report struct {
	Status       Status
	Dimension    int
	Lambda       float64
	PsiThreshold float64
}

// Service assembles health reports.
type Service struct {
	engine EngineInfo
}

// New creates a Service.
func New(engine EngineInfo) *Service {
	return &Service{engine: engine}
}

// Check reports the engine parameters. The engine is wired at startup and
// holds no external connections, so a serving process is a healthy one.
func (s *Service) Check(_ context.Context) Report {
	return Report{
		Status:       Healthy,
		Dimension:    s.engine.Dimension(),
		Lambda:       s.engine.Lambda(),
		PsiThreshold: s.engine.PsiThreshold(),
	}
}
