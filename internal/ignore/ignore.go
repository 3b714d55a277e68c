package ignore

import (
	"bufio"

	"github.com/bethropolis/ignore-export/internal/utils"
	"github.com/spf13/afero"
)

// New compiles rule lines into a Matcher. Lines that fail to compile are
// dropped with a warning; the remaining rules still apply.
func New(lines []string, opts ...Option) *Matcher {
	m := &Matcher{
		probeSegment: DefaultProbeSegment,
		matchCache:   make(map[string]bool),
		dirCache:     make(map[string]bool),
		logger:       utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	for i, raw := range lines {
		r, warn := compileLine(raw, i+1)
		if warn != nil {
			m.warnings = append(m.warnings, *warn)
			m.logger.Warn("ignore: dropping pattern %q (line %d): %s", warn.Pattern, warn.Line, warn.Message)
			continue
		}
		if r != nil {
			m.rules = append(m.rules, *r)
		}
	}

	m.logger.Debug("ignore: compiled %d rules (%d dropped)", len(m.rules), len(m.warnings))
	return m
}

// FromFile reads the rule file at path and compiles it. A missing or
// unreadable file yields a nil Matcher, which reports every path as not
// ignored.
func FromFile(fsys afero.Fs, path string, opts ...Option) *Matcher {
	f, err := fsys.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil
	}
	return New(lines, opts...)
}
