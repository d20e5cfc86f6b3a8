package qcheck

// ShrinkingMode selects how aggressively the driver should shrink a
// failing sample.
type ShrinkingMode int

const (
	// ShrinkingFull descends the shrink tree until no smaller failing
	// candidate exists (the default).
	ShrinkingFull ShrinkingMode = iota
	// ShrinkingBounded stops after a fixed number of successful descents,
	// trading minimality for speed on expensive properties.
	ShrinkingBounded
	// ShrinkingOff reports the original failing sample unshrunk.
	ShrinkingOff
)

// PropertyConfig is the one piece of configuration the core exposes to a
// driver: how many samples to try, which seed to start from, and how hard
// to shrink a failure. Built through functional options rather than a
// mutable struct literal or a package-global registry, so a driver never
// has to reason about shared mutable state between property runs.
type PropertyConfig struct {
	Tries         int
	Seed          int64
	ShrinkingMode ShrinkingMode
	MaxShrinks    int
	GenSize       int
}

// PropertyOption configures a PropertyConfig.
type PropertyOption func(*PropertyConfig)

// WithTries sets the number of samples the driver should attempt.
func WithTries(tries int) PropertyOption {
	return func(c *PropertyConfig) { c.Tries = tries }
}

// WithSeed pins the starting seed, making a run reproducible.
func WithSeed(seed int64) PropertyOption {
	return func(c *PropertyConfig) { c.Seed = seed }
}

// WithShrinkingMode selects the shrinking strategy.
func WithShrinkingMode(mode ShrinkingMode) PropertyOption {
	return func(c *PropertyConfig) { c.ShrinkingMode = mode }
}

// WithMaxShrinks bounds the number of descents ShrinkingBounded performs.
func WithMaxShrinks(n int) PropertyOption {
	return func(c *PropertyConfig) { c.MaxShrinks = n }
}

// NewPropertyConfig builds a PropertyConfig with sane defaults (100 tries,
// full shrinking, genSize following tries) modified by opts.
func NewPropertyConfig(opts ...PropertyOption) *PropertyConfig {
	c := &PropertyConfig{
		Tries:         100,
		Seed:          0,
		ShrinkingMode: ShrinkingFull,
		MaxShrinks:    1000,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.GenSize == 0 {
		c.GenSize = c.Tries
	}
	return c
}
