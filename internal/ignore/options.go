package ignore

import "github.com/bethropolis/ignore-export/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithLogger sets the logger used for parse warnings.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithProbeSegment overrides the synthetic child name used by the
// directory predicate.
func WithProbeSegment(segment string) Option {
	return func(m *Matcher) {
		if segment != "" {
			m.probeSegment = segment
		}
	}
}
