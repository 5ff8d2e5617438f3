// Package coherence scores declared intents against the invariant
// reference vector and issues Evidence Notes for the outcome.
package coherence

import (
	"context"
	"fmt"
	"time"

	"github.com/matverse/psigate/internal/domain"
	"github.com/matverse/psigate/internal/domain/evidence"
	"github.com/matverse/psigate/internal/domain/intent"
	"github.com/matverse/psigate/internal/domain/psi"
)

const noteMessage = "Evidence Note recorded with the invariant semantic coherence metric."

// Service computes the Psi coherence index
//
//	psi = clip(F - lambda*S, 0, 1)
//
// where F is the squared-cosine fidelity between the intent vector and the
// reference vector and S is the KL divergence of their induced
// distributions. The reference vector is fixed at construction; every
// submission is scored against the same invariant.
type Service struct {
	reference []float64
	lambda    float64
	threshold float64
	floor     float64
	clock     Clock
	hasher    Hasher
}

// New validates the engine configuration and returns a ready service.
func New(cfg domain.EngineConfig, clk Clock, hasher Hasher) (*Service, error) {
	if len(cfg.ReferenceVector) == 0 {
		return nil, fmt.Errorf("%w: reference vector must not be empty", domain.ErrInvalidEngineConfig)
	}
	if cfg.Lambda <= 0 {
		return nil, fmt.Errorf("%w: lambda must be positive, got %g", domain.ErrInvalidEngineConfig, cfg.Lambda)
	}
	if cfg.PsiThreshold < 0 || cfg.PsiThreshold > 1 {
		return nil, fmt.Errorf("%w: psi threshold must be within [0, 1], got %g", domain.ErrInvalidEngineConfig, cfg.PsiThreshold)
	}
	if cfg.DivergenceFloor <= 0 {
		return nil, fmt.Errorf("%w: divergence floor must be positive, got %g", domain.ErrInvalidEngineConfig, cfg.DivergenceFloor)
	}
	if clk == nil {
		return nil, fmt.Errorf("%w: clock must not be nil", domain.ErrInvalidEngineConfig)
	}
	if hasher == nil {
		return nil, fmt.Errorf("%w: hasher must not be nil", domain.ErrInvalidEngineConfig)
	}

	reference := make([]float64, len(cfg.ReferenceVector))
	copy(reference, cfg.ReferenceVector)

	return &Service{
		reference: reference,
		lambda:    cfg.Lambda,
		threshold: cfg.PsiThreshold,
		floor:     cfg.DivergenceFloor,
		clock:     clk,
		hasher:    hasher,
	}, nil
}

// Evaluate scores one submission and returns its Evidence Note. The empty
// check runs before the dimension check so a missing vector is reported as
// such rather than as a mismatch.
func (s *Service) Evaluate(ctx context.Context, sub intent.Submission) (evidence.Note, error) {
	vector := sub.Vector()
	if len(vector) == 0 {
		return evidence.Note{}, domain.ErrEmptyIntentVector
	}
	if len(vector) != len(s.reference) {
		return evidence.Note{}, domain.NewDimensionMismatch(len(s.reference), len(vector))
	}

	fidelity := psi.Fidelity(vector, s.reference)
	penalty := psi.Divergence(vector, s.reference, s.floor)
	index := psi.Clip(fidelity - s.lambda*penalty)
	status := evidence.Classify(index, s.threshold)

	timestamp := unixSeconds(s.clock.Now())
	hash, err := s.hasher.Sum(evidence.CanonicalPayload(vector, timestamp, index))
	if err != nil {
		return evidence.Note{}, fmt.Errorf("hash evidence payload: %w", err)
	}

	return evidence.New(timestamp, hash, index, fidelity, penalty, s.lambda, status, noteMessage), nil
}

// Dimension returns the length of the reference vector.
func (s *Service) Dimension() int { return len(s.reference) }

// Lambda returns the divergence penalty weight.
func (s *Service) Lambda() float64 { return s.lambda }

// PsiThreshold returns the gate threshold.
func (s *Service) PsiThreshold() float64 { return s.threshold }

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
