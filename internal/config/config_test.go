package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_ThresholdAboveOne(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Engine: EngineConfig{PsiThreshold: 1.2},
	}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for threshold above 1")
	}

	expected := "engine.psi_threshold must be between 0 and 1, got 1.2"
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_DefaultedConfigIsValid(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if len(cfg.Engine.ReferenceVector) != 5 {
		t.Errorf("expected 5-dimensional reference vector, got %d", len(cfg.Engine.ReferenceVector))
	}
	if cfg.Engine.Lambda != 0.27 {
		t.Errorf("expected Lambda=0.27, got %g", cfg.Engine.Lambda)
	}
	if cfg.Engine.PsiThreshold != 0.85 {
		t.Errorf("expected PsiThreshold=0.85, got %g", cfg.Engine.PsiThreshold)
	}
	if cfg.Engine.DivergenceFloor != 1e-10 {
		t.Errorf("expected DivergenceFloor=1e-10, got %g", cfg.Engine.DivergenceFloor)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Engine: EngineConfig{
			ReferenceVector: []float64{1, 0, 0},
			Lambda:          0.5,
			PsiThreshold:    0.9,
			DivergenceFloor: 1e-8,
		},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if len(cfg.Engine.ReferenceVector) != 3 {
		t.Errorf("expected custom reference vector kept, got %v", cfg.Engine.ReferenceVector)
	}
	if cfg.Engine.Lambda != 0.5 {
		t.Errorf("expected Lambda=0.5, got %g", cfg.Engine.Lambda)
	}
	if cfg.Engine.PsiThreshold != 0.9 {
		t.Errorf("expected PsiThreshold=0.9, got %g", cfg.Engine.PsiThreshold)
	}
	if cfg.Engine.DivergenceFloor != 1e-8 {
		t.Errorf("expected DivergenceFloor=1e-8, got %g", cfg.Engine.DivergenceFloor)
	}
}

func TestApplyDefaults_ZeroThresholdReadsAsUnset(t *testing.T) {
	// The zero value doubles as absent: an explicit psi_threshold of 0 in
	// YAML takes the 0.85 default instead of opening the gate to every
	// submission.
	raw := `
http:
  port: 8080
engine:
  psi_threshold: 0
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cfg.ApplyDefaults()

	if cfg.Engine.PsiThreshold != 0.85 {
		t.Errorf("expected an explicit zero threshold to take the 0.85 default, got %g", cfg.Engine.PsiThreshold)
	}
}

func TestUnmarshal_EngineSection(t *testing.T) {
	raw := `
http:
  port: 8080
engine:
  reference_vector: [0.92, 0.15, 0.60, 0.88, 0.05]
  lambda: 0.27
  psi_threshold: 0.85
  divergence_floor: 1.0e-10
logging:
  level: debug
`

	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if len(cfg.Engine.ReferenceVector) != 5 || cfg.Engine.ReferenceVector[0] != 0.92 {
		t.Errorf("unexpected reference vector: %v", cfg.Engine.ReferenceVector)
	}
	if cfg.Engine.DivergenceFloor != 1e-10 {
		t.Errorf("expected divergence floor 1e-10, got %g", cfg.Engine.DivergenceFloor)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", cfg.Logging.Level)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PSIGATE_TEST_PORT", "9090")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "set variable", input: "port: ${PSIGATE_TEST_PORT}", want: "port: 9090"},
		{name: "set variable ignores default", input: "port: ${PSIGATE_TEST_PORT:-8080}", want: "port: 9090"},
		{name: "unset variable with default", input: "port: ${PSIGATE_TEST_UNSET:-8080}", want: "port: 8080"},
		{name: "unset variable without default", input: "port: ${PSIGATE_TEST_UNSET}", want: "port: "},
		{name: "no variables", input: "port: 8080", want: "port: 8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(expandEnvVars([]byte(tt.input))); got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want %q", got, "local")
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want %q", got, "prod")
	}
}
