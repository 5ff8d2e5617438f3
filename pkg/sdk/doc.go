// Package psigate provides an embedded Go client for the psigate semantic
// coherence gate.
//
// The client hosts the scoring engine in-process, so no server round trip
// is involved: every intent vector is scored against the invariant
// reference vector and answered with a tamper-evident Evidence Note.
//
//	client, _ := psigate.New()
//	note, _ := client.Evaluate(ctx, psigate.Intent{
//	    Declared: "promote build 412 to production",
//	    Vector:   []float64{0.90, 0.20, 0.55, 0.85, 0.10},
//	})
//	if note.Status == psigate.StatusCoherent {
//	    // proceed, keep note.Hash for the audit trail
//	}
//
// The invariant defaults (reference vector, lambda, threshold) match the
// hosted API and can be overridden per client:
//
//	client, _ := psigate.New(
//	    psigate.WithLambda(0.35),
//	    psigate.WithPsiThreshold(0.9),
//	)
package psigate
