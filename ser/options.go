package ser

// DefaultMaxDepth is the nesting limit applied when MaxDepth is not given.
const DefaultMaxDepth = 512

// Option configures a Converter.
type Option func(*config)

type config struct {
	maxDepth  int
	reflector Reflector
}

var defaultConfig = newConfig()

func newConfig(opts ...Option) *config {
	cfg := &config{
		maxDepth:  DefaultMaxDepth,
		reflector: DefaultReflector,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// MaxDepth bounds the nesting depth of a conversion. Values nested deeper,
// such as cyclic pointer graphs, fail with ErrMaxDepth.
func MaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// SortMapKeys controls whether Go maps described by reflection emit their
// entries in sorted key order (the default) or in iteration order.
func SortMapKeys(v bool) Option {
	return func(c *config) { c.reflector.SortMapKeys = v }
}

// TagName sets the struct tag consulted by reflection, "yaml" by default.
func TagName(name string) Option {
	return func(c *config) { c.reflector.TagName = name }
}
