// Package chi exposes the coherence gateway over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/matverse/psigate/internal/domain"
	"github.com/matverse/psigate/internal/domain/intent"
	"github.com/matverse/psigate/internal/logger"
	coherenceuc "github.com/matverse/psigate/internal/usecase/coherence"
	healthuc "github.com/matverse/psigate/internal/usecase/health"
)

// errorCode identifies a failure class on the wire.
type errorCode string

const (
	codeBadRequest        errorCode = "bad_request"
	codeEmptyIntentVector errorCode = "empty_intent_vector"
	codeDimensionMismatch errorCode = "dimension_mismatch"
	codeInternalError     errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server hosts the evidence, health and metrics endpoints.
type Server struct {
	coherence     *coherenceuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(coherence *coherenceuc.Service, health *healthuc.Service, log *zap.Logger) *Server {
	s := &Server{
		coherence: coherence,
		health:    health,
		logger:    log,
	}
	s.errorHandlers = []errorHandler{
		dimensionMismatchHandler,
		sentinelHandler(domain.ErrEmptyIntentVector, http.StatusBadRequest, codeEmptyIntentVector),
	}
	return s
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Post("/evidence", s.SubmitEvidence)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

type evidenceRequest struct {
	Intent       string            `json:"intent"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	IntentVector []float64         `json:"intent_vector"`
}

type evidenceResponse struct {
	Timestamp      float64 `json:"timestamp"`
	Hash           string  `json:"hash"`
	PsiIndex       float64 `json:"psi_index"`
	Fidelity       float64 `json:"fidelity"`
	EntropyPenalty float64 `json:"entropy_penalty"`
	Lambda         float64 `json:"lambda"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
}

type healthResponse struct {
	Status          string  `json:"status"`
	Lambda          float64 `json:"lambda"`
	PsiThreshold    float64 `json:"psi_threshold"`
	VectorDimension int     `json:"vector_dimension"`
}

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// SubmitEvidence handles POST /evidence.
func (s *Server) SubmitEvidence(w http.ResponseWriter, r *http.Request) {
	var req evidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sub := intent.New(req.Intent, req.IntentVector, req.Metadata)
	note, err := s.coherence.Evaluate(r.Context(), sub)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	logger.FromContext(r.Context()).Debug("evidence note issued",
		zap.Float64("psi_index", note.PsiIndex()),
		zap.String("status", string(note.Status())),
	)

	writeJSON(w, http.StatusOK, evidenceResponse{
		Timestamp:      note.Timestamp(),
		Hash:           note.Hash(),
		PsiIndex:       note.PsiIndex(),
		Fidelity:       note.Fidelity(),
		EntropyPenalty: note.EntropyPenalty(),
		Lambda:         note.Lambda(),
		Status:         string(note.Status()),
		Message:        note.Message(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	writeJSON(w, http.StatusOK, healthResponse{
		Status:          string(report.Status),
		Lambda:          report.Lambda,
		PsiThreshold:    report.PsiThreshold,
		VectorDimension: report.Dimension,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyIntentVector,
		domain.ErrDimensionMismatch,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// dimensionMismatchHandler handles ErrDimensionMismatch with the expected and
// received dimensions as extra fields.
func dimensionMismatchHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		return false
	}
	var dme *domain.DimensionMismatchError
	if errors.As(err, &dme) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":               codeDimensionMismatch,
			"message":            msg,
			"expected_dimension": dme.Expected,
			"received_dimension": dme.Received,
		})
		return true
	}
	writeError(w, http.StatusBadRequest, codeDimensionMismatch, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
