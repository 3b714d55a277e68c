package ignore

// DefaultProbeSegment is the synthetic child name used by the directory
// predicate. It must never collide with a real file name.
const DefaultProbeSegment = "__ignore_probe__"

// IsDirIgnored reports whether a directory counts as ignored.
//
// A rule like "build/" compiles into the equivalent of "**/build/**",
// which matches everything under the directory but not the bare string
// "build". To classify the directory itself, a synthetic probe child is
// evaluated alongside the literal path: the directory is ignored if
// either matches. Results are cached per directory for the lifetime of
// the Matcher.
func (m *Matcher) IsDirIgnored(dir string) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}
	p := Normalize(dir)
	if p == "" || p == "." {
		return false
	}
	if v, ok := m.dirCache[p]; ok {
		return v
	}
	ignored := m.Evaluate(p) || m.Evaluate(p+"/"+m.probeSegment)
	m.dirCache[p] = ignored
	return ignored
}
