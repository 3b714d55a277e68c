// Package collector walks filesystem roots, classifies entries against an
// ignore rule set, and produces the complete ignored-file and
// ignored-directory sets, including ancestor directories and sidecar
// metadata files.
package collector

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// PathIndex supplies the flat list of file paths known to exist under the
// primary managed root, relative to the project root. It is refreshed
// externally and treated as read-only and authoritative, except for
// entries it omits by naming convention (see the supplemental scan).
type PathIndex interface {
	Paths() ([]string, error)
}

// Result holds the two ignored sets produced by one collection pass.
// Both sets hold unique project-relative paths with forward slashes and
// no trailing slash; the file set never contains directories.
type Result struct {
	files mapset.Set[string]
	dirs  mapset.Set[string]
}

// NewResult returns an empty Result. A fresh Result is created at the
// start of every collection pass.
func NewResult() *Result {
	return &Result{
		files: mapset.NewSet[string](),
		dirs:  mapset.NewSet[string](),
	}
}

// AddFile records an ignored file path.
func (r *Result) AddFile(path string) {
	r.files.Add(path)
}

// AddDir records an ignored directory path.
func (r *Result) AddDir(path string) {
	r.dirs.Add(strings.TrimSuffix(path, "/"))
}

// HasFile reports whether path is in the ignored-file set.
func (r *Result) HasFile(path string) bool { return r.files.Contains(path) }

// HasDir reports whether path is in the ignored-directory set.
func (r *Result) HasDir(path string) bool { return r.dirs.Contains(path) }

// Files returns the ignored file paths in ordinal order.
func (r *Result) Files() []string {
	out := r.files.ToSlice()
	sort.Strings(out)
	return out
}

// Dirs returns the ignored directory paths in ordinal order.
func (r *Result) Dirs() []string {
	out := r.dirs.ToSlice()
	sort.Strings(out)
	return out
}

// Counts returns the sizes of the file and directory sets.
func (r *Result) Counts() (files, dirs int) {
	return r.files.Cardinality(), r.dirs.Cardinality()
}

// Equal reports whether two results hold the same sets.
func (r *Result) Equal(other *Result) bool {
	return r.files.Equal(other.files) && r.dirs.Equal(other.dirs)
}
