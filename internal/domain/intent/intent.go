// Package intent models the declared intent submitted for coherence scoring.
package intent

// Submission is one declared intent together with its numeric projection.
// The vector is what gets scored; the declared text and metadata travel
// with the submission for audit context and never influence the index.
type Submission struct {
	declared string
	vector   []float64
	metadata map[string]string
}

// New builds a submission. The vector and metadata are copied so later
// mutation by the caller cannot change what gets scored.
func New(declared string, vector []float64, metadata map[string]string) Submission {
	v := make([]float64, len(vector))
	copy(v, vector)

	var m map[string]string
	if len(metadata) > 0 {
		m = make(map[string]string, len(metadata))
		for k, val := range metadata {
			m[k] = val
		}
	}

	return Submission{declared: declared, vector: v, metadata: m}
}

// Declared returns the free-text intent statement.
func (s Submission) Declared() string { return s.declared }

// Vector returns the numeric projection of the intent.
func (s Submission) Vector() []float64 { return s.vector }

// Metadata returns the caller-supplied context tags, or nil.
func (s Submission) Metadata() map[string]string { return s.metadata }
