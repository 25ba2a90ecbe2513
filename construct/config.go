package construct

import "math/rand"

// Config aggregates the knobs every Constructor may read. It is passed
// by value.
type Config struct {
	payloadFn func(index int) any
	rng       *rand.Rand
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithPayloadFunc supplies the function used to derive each new
// vertex's payload from its 0-based insertion order. The default is a
// function returning the index itself as an int.
func WithPayloadFunc(fn func(index int) any) Option {
	return func(c *Config) { c.payloadFn = fn }
}

// WithSeed freezes the RNG any stochastic Constructor reads from cfg.rng.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newConfig(opts ...Option) Config {
	cfg := Config{
		payloadFn: func(index int) any { return index },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
