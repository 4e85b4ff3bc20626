package config

import "testing"

func TestLoadDefaultsPort(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
}

func TestLoadReadsPort(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if got := cfg.Addr(); got != ":8080" {
		t.Fatalf("expected addr :8080, got %q", got)
	}
	if got := cfg.HealthURL(); got != "http://localhost:8080/health" {
		t.Fatalf("unexpected health URL %q", got)
	}
}

func TestLoadTreatsBadPortAsUnset(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not a number", "eight-thousand"},
		{"trailing junk", "8080x"},
		{"negative", "-1"},
		{"zero", "0"},
		{"above range", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.raw)

			cfg := Load()
			if cfg.Port != DefaultPort {
				t.Fatalf("PORT=%q: expected fallback to %d, got %d", tt.raw, DefaultPort, cfg.Port)
			}
		})
	}
}
