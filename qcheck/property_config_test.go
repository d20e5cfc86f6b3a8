package qcheck

import "testing"

func TestNewPropertyConfigDefaults(t *testing.T) {
	c := NewPropertyConfig()
	if c.Tries != 100 {
		t.Fatalf("Tries = %d, want 100", c.Tries)
	}
	if c.ShrinkingMode != ShrinkingFull {
		t.Fatalf("ShrinkingMode = %v, want ShrinkingFull", c.ShrinkingMode)
	}
	if c.GenSize != c.Tries {
		t.Fatalf("GenSize = %d, want it to follow Tries (%d)", c.GenSize, c.Tries)
	}
}

func TestPropertyOptionsOverrideDefaults(t *testing.T) {
	c := NewPropertyConfig(
		WithTries(50),
		WithSeed(42),
		WithShrinkingMode(ShrinkingBounded),
		WithMaxShrinks(10),
	)
	if c.Tries != 50 || c.Seed != 42 || c.ShrinkingMode != ShrinkingBounded || c.MaxShrinks != 10 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.GenSize != 50 {
		t.Fatalf("GenSize = %d, want it to follow the overridden Tries (50)", c.GenSize)
	}
}
