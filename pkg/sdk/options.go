package psigate

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matverse/psigate/internal/domain"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// Clock supplies the timestamps embedded in Evidence Notes.
type Clock interface {
	Now() time.Time
}

// Hasher computes the hex content hash embedded in Evidence Notes.
type Hasher interface {
	Sum(payload []byte) (string, error)
}

type clientConfig struct {
	engine domain.EngineConfig
	clock  Clock
	hasher Hasher

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithReferenceVector replaces the invariant reference vector. The vector's
// length becomes the required dimension of every scored intent.
func WithReferenceVector(v []float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine.ReferenceVector = v
	})
}

// WithLambda sets the divergence penalty weight. Default: 0.27.
func WithLambda(lambda float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine.Lambda = lambda
	})
}

// WithPsiThreshold sets the gate threshold. Default: 0.85.
func WithPsiThreshold(threshold float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine.PsiThreshold = threshold
	})
}

// WithDivergenceFloor sets the smoothing floor added to every vector
// component before the divergence term. Default: 1e-10.
func WithDivergenceFloor(floor float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.engine.DivergenceFloor = floor
	})
}

// WithClock overrides the wall clock. Useful for reproducible notes in tests.
func WithClock(clk Clock) Option {
	return optionFunc(func(c *clientConfig) {
		c.clock = clk
	})
}

// WithHasher overrides the content hasher. Default: SHA2-256 hex multihash.
func WithHasher(h Hasher) Option {
	return optionFunc(func(c *clientConfig) {
		c.hasher = h
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
