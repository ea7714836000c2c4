package errcode

// config holds the settings used to build a category.
type config struct {
	name       string
	source     Source
	fallback   Category
	wouldBlock []Int
}

// Option configures a category built by NewPosixCategory or NewSystemCategory.
type Option func(*config)

// WithName sets the category label used by Display and Debug output.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithSource replaces the platform source, typically with a fake in tests.
func WithSource(src Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithFallback sets the category a system category delegates to for codes
// its source does not recognize. Pass nil to disable delegation.
func WithFallback(fallback Category) Option {
	return func(c *config) {
		c.fallback = fallback
	}
}

// WithWouldBlock replaces the set of codes the category itself treats as
// would-block.
func WithWouldBlock(codes ...Int) Option {
	return func(c *config) {
		c.wouldBlock = append([]Int(nil), codes...)
	}
}

// newConfig applies opts over defaults.
func newConfig(defaults config, opts []Option) config {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
