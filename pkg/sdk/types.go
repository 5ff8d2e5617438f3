package psigate

import "github.com/matverse/psigate/internal/domain/evidence"

// Status is the gate verdict attached to an Evidence Note.
type Status string

// Gate verdict constants.
const (
	StatusCoherent   = Status(evidence.StatusCoherent)
	StatusIncoherent = Status(evidence.StatusIncoherent)
)

// Intent is one declared intent to score. Declared and Metadata travel with
// the submission for audit context; only Vector influences the index.
type Intent struct {
	Declared string
	Vector   []float64
	Metadata map[string]string
}

// EvidenceNote is the scoring outcome for one intent.
type EvidenceNote struct {
	Timestamp      float64 // fractional unix seconds
	Hash           string  // hex multihash of the canonical payload
	PsiIndex       float64 // clipped coherence index in [0,1]
	Fidelity       float64
	EntropyPenalty float64
	Lambda         float64
	Status         Status
	Message        string
}

// HealthStatus describes the engine a client is scoring with.
type HealthStatus struct {
	Status          string
	VectorDimension int
	Lambda          float64
	PsiThreshold    float64
}
