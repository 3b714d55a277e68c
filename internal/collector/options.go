package collector

import "github.com/bethropolis/ignore-export/internal/utils"

// Option is a functional option for configuring a Collector.
type Option func(*Collector)

// WithLogger sets a custom logger for the collector.
func WithLogger(logger utils.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIndex supplies the external path index for the primary root. Without
// one, the primary root contributes entries only through the supplemental
// scan.
func WithIndex(index PathIndex) Option {
	return func(c *Collector) {
		c.index = index
	}
}

// WithExtraRoots names additional top-level directories to traverse
// directly. Each is resolved beneath the project root; absent names and
// duplicates of the primary root are skipped.
func WithExtraRoots(names []string) Option {
	return func(c *Collector) {
		c.extraRoots = names
	}
}

// WithSidecarSuffix overrides the sidecar metadata file suffix.
func WithSidecarSuffix(suffix string) Option {
	return func(c *Collector) {
		if suffix != "" {
			c.sidecarSuffix = suffix
		}
	}
}
