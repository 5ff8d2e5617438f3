// Package evidence defines the Evidence Note issued for every scored
// intent and the gate that classifies coherence indexes.
package evidence

// Status is the gate verdict attached to an Evidence Note.
type Status string

const (
	// StatusCoherent marks an index at or above the gate threshold.
	StatusCoherent Status = "coherent-approved"
	// StatusIncoherent marks an index below the gate threshold.
	StatusIncoherent Status = "incoherent-penalized"
)

// Classify applies the gate. The comparison is inclusive: an index equal
// to the threshold is approved.
func Classify(psiIndex, threshold float64) Status {
	if psiIndex >= threshold {
		return StatusCoherent
	}
	return StatusIncoherent
}

// Note is the tamper-evident record produced for one scored intent. The
// hash covers the canonical payload of {intent vector, timestamp, index},
// so any later alteration of the note's numeric content is detectable by
// recomputing the hash. Notes are returned to the caller and never stored.
type Note struct {
	timestamp      float64
	hash           string
	psiIndex       float64
	fidelity       float64
	entropyPenalty float64
	lambda         float64
	status         Status
	message        string
}

// New assembles a note. The timestamp is fractional unix seconds.
func New(
	timestamp float64,
	hash string,
	psiIndex, fidelity, entropyPenalty, lambda float64,
	status Status,
	message string,
) Note {
	return Note{
		timestamp:      timestamp,
		hash:           hash,
		psiIndex:       psiIndex,
		fidelity:       fidelity,
		entropyPenalty: entropyPenalty,
		lambda:         lambda,
		status:         status,
		message:        message,
	}
}

// Timestamp returns the note creation time in fractional unix seconds.
func (n Note) Timestamp() float64 { return n.timestamp }

// Hash returns the hex-encoded content hash.
func (n Note) Hash() string { return n.hash }

// PsiIndex returns the clipped coherence index in [0,1].
func (n Note) PsiIndex() float64 { return n.psiIndex }

// Fidelity returns the fidelity term of the index.
func (n Note) Fidelity() float64 { return n.fidelity }

// EntropyPenalty returns the divergence term of the index.
func (n Note) EntropyPenalty() float64 { return n.entropyPenalty }

// Lambda returns the penalty weight the note was scored with.
func (n Note) Lambda() float64 { return n.lambda }

// Status returns the gate verdict.
func (n Note) Status() Status { return n.status }

// Message returns the confirmation message.
func (n Note) Message() string { return n.message }
