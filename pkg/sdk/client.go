package psigate

import (
	"context"
	"fmt"
	"time"

	"github.com/matverse/psigate/internal/clock"
	"github.com/matverse/psigate/internal/digest"
	"github.com/matverse/psigate/internal/domain"
	"github.com/matverse/psigate/internal/domain/intent"
	coherenceuc "github.com/matverse/psigate/internal/usecase/coherence"
	healthuc "github.com/matverse/psigate/internal/usecase/health"
)

// Client is the psigate SDK entry point. It is safe for concurrent use.
type Client struct {
	engine    *coherenceuc.Service
	healthSvc *healthuc.Service
	obs       *observer
}

// New creates a Client scoring against the invariant defaults, then applies
// any options.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		engine: domain.DefaultEngineConfig(),
		clock:  clock.System{},
		hasher: digest.SHA256{},
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	engine, err := coherenceuc.New(cfg.engine, cfg.clock, cfg.hasher)
	if err != nil {
		return nil, fmt.Errorf("psigate: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		engine:    engine,
		healthSvc: healthuc.New(engine),
		obs:       obs,
	}, nil
}

// Evaluate scores one intent against the reference vector and returns its
// Evidence Note. The error is ErrEmptyIntentVector or ErrDimensionMismatch
// for invalid input; use DimensionMismatch to read the dimensions.
func (c *Client) Evaluate(ctx context.Context, in Intent) (note EvidenceNote, err error) {
	start := time.Now()
	defer func() { c.obs.observe("evaluate", start, err) }()

	n, err := c.engine.Evaluate(ctx, intent.New(in.Declared, in.Vector, in.Metadata))
	if err != nil {
		return EvidenceNote{}, fmt.Errorf("evaluate: %w", err)
	}

	return EvidenceNote{
		Timestamp:      n.Timestamp(),
		Hash:           n.Hash(),
		PsiIndex:       n.PsiIndex(),
		Fidelity:       n.Fidelity(),
		EntropyPenalty: n.EntropyPenalty(),
		Lambda:         n.Lambda(),
		Status:         Status(n.Status()),
		Message:        n.Message(),
	}, nil
}

// Health reports the engine parameters the client scores with.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	return HealthStatus{
		Status:          string(report.Status),
		VectorDimension: report.Dimension,
		Lambda:          report.Lambda,
		PsiThreshold:    report.PsiThreshold,
	}
}
