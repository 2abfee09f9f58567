package database

import "testing"

func TestMaxConnsFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("DATABASE_MAX_CONNS", "")
		if got := maxConnsFromEnv(); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("DATABASE_MAX_CONNS", "16")
		if got := maxConnsFromEnv(); got != 16 {
			t.Fatalf("expected 16, got %d", got)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		for _, raw := range []string{"zero", "-2", "0"} {
			t.Setenv("DATABASE_MAX_CONNS", raw)
			if got := maxConnsFromEnv(); got != 4 {
				t.Fatalf("expected fallback 4 for %q, got %d", raw, got)
			}
		}
	})
}
