package digest

import (
	"strings"
	"testing"
)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "empty payload",
			payload: "",
			want:    "1220e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:    "abc",
			payload: "abc",
			want:    "1220ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SHA256{}.Sum([]byte(tt.payload))
			if err != nil {
				t.Fatalf("Sum() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Sum(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestSumShape(t *testing.T) {
	got, err := SHA256{}.Sum([]byte("v=1,2;t=3;psi=0.5"))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}

	if len(got) != 68 {
		t.Errorf("len(hash) = %d, want 68", len(got))
	}
	if !strings.HasPrefix(got, "1220") {
		t.Errorf("hash %q does not carry the sha2-256 multihash prefix", got)
	}
	for _, r := range got {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("hash %q contains non-hex rune %q", got, r)
			break
		}
	}
}

func TestSumDeterministicAndSensitive(t *testing.T) {
	first, err := SHA256{}.Sum([]byte("payload"))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	second, err := SHA256{}.Sum([]byte("payload"))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if first != second {
		t.Errorf("same payload hashed to %q and %q", first, second)
	}

	other, err := SHA256{}.Sum([]byte("payloae"))
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if other == first {
		t.Error("different payloads produced the same hash")
	}
}
