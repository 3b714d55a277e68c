// Package ignore compiles gitignore-style rule lines and evaluates paths
// against them.
package ignore

import (
	"regexp"

	"github.com/bethropolis/ignore-export/internal/utils"
)

// MatchKind classifies the last matching rule for a path.
type MatchKind int

const (
	// MatchNone means no rule matched the path.
	MatchNone MatchKind = iota
	// MatchIgnore means the last matching rule was a plain ignore rule.
	MatchIgnore
	// MatchNegate means the last matching rule started with '!'.
	MatchNegate
)

func (k MatchKind) String() string {
	switch k {
	case MatchIgnore:
		return "ignore"
	case MatchNegate:
		return "negate"
	default:
		return "none"
	}
}

// Rule is one compiled ignore pattern. Rules are immutable once compiled
// and are only ever replaced wholesale when the rule source changes.
type Rule struct {
	pattern string // original line, kept for diagnostics
	re      *regexp.Regexp
	negate  bool
}

// Pattern returns the original rule line the Rule was compiled from.
func (r Rule) Pattern() string { return r.pattern }

// Negated reports whether the rule started with '!'.
func (r Rule) Negated() bool { return r.negate }

// ParseWarning describes a rule line that was dropped during compilation.
// Dropped lines are non-fatal; the remaining rules still apply.
type ParseWarning struct {
	Pattern string // the problematic line
	Line    int    // 1-indexed line number in the rule source
	Message string
}

// Matcher holds an ordered, immutable rule list together with the
// evaluation caches scoped to it. A nil Matcher is valid and reports
// every path as not ignored (the "absent rule set" case).
type Matcher struct {
	rules        []Rule
	warnings     []ParseWarning
	probeSegment string
	matchCache   map[string]bool
	dirCache     map[string]bool
	logger       utils.Logger
}

// RuleCount returns the number of compiled rules.
func (m *Matcher) RuleCount() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// Warnings returns the parse warnings collected during compilation.
func (m *Matcher) Warnings() []ParseWarning {
	if m == nil {
		return nil
	}
	return m.warnings
}
