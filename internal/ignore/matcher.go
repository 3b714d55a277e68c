package ignore

import "strings"

// Normalize converts a path to the canonical form rules are evaluated
// against: forward-slash separators, no leading slash. All cache keys use
// this form.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.TrimPrefix(path, "/")
}

// Evaluate reports whether path is ignored. The rule list is scanned from
// the last-declared rule backward and the first structural match decides
// (gitignore "last rule wins"). Results are cached for the lifetime of
// the Matcher.
func (m *Matcher) Evaluate(path string) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}
	p := Normalize(path)
	if v, ok := m.matchCache[p]; ok {
		return v
	}
	ignored := m.lastMatch(p) == MatchIgnore
	m.matchCache[p] = ignored
	return ignored
}

// LastMatchKind reports how the last matching rule classified path, or
// MatchNone when no rule matches. Unlike Evaluate it is not cached; it is
// only consulted where "never matched" and "matched but negated" differ
// in behavior (sidecar inclusion).
func (m *Matcher) LastMatchKind(path string) MatchKind {
	if m == nil {
		return MatchNone
	}
	return m.lastMatch(Normalize(path))
}

func (m *Matcher) lastMatch(p string) MatchKind {
	for i := len(m.rules) - 1; i >= 0; i-- {
		if m.rules[i].re.MatchString(p) {
			if m.rules[i].negate {
				return MatchNegate
			}
			return MatchIgnore
		}
	}
	return MatchNone
}

// ResetCaches drops the match and directory caches. The rule list itself
// is immutable; a rule-source change always builds a new Matcher.
func (m *Matcher) ResetCaches() {
	if m == nil {
		return
	}
	m.matchCache = make(map[string]bool)
	m.dirCache = make(map[string]bool)
}
