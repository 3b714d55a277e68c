package collector

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bethropolis/ignore-export/internal/ignore"
	"github.com/bethropolis/ignore-export/internal/utils"
	"github.com/spf13/afero"
)

// DefaultSidecarSuffix is appended to a path's full name to form its
// sidecar metadata path.
const DefaultSidecarSuffix = ".meta"

// indexMarker is the reserved character that makes the index skip an
// entry by naming convention.
const indexMarker = '~'

// Collector classifies filesystem entries against a rule set and builds
// the ignored-file and ignored-directory sets. One Collector performs one
// collection pass; state does not carry over between passes.
type Collector struct {
	fsys          afero.Fs
	projectRoot   string // absolute
	primaryRoot   string // name of the primary managed root
	extraRoots    []string
	sidecarSuffix string
	index         PathIndex
	matcher       *ignore.Matcher
	logger        utils.Logger
}

// New creates a Collector for one collection pass. projectRoot must be
// absolute; primaryRoot is the name of the primary managed root beneath
// it.
func New(fsys afero.Fs, projectRoot, primaryRoot string, matcher *ignore.Matcher, opts ...Option) *Collector {
	c := &Collector{
		fsys:          fsys,
		projectRoot:   projectRoot,
		primaryRoot:   primaryRoot,
		sidecarSuffix: DefaultSidecarSuffix,
		matcher:       matcher,
		logger:        utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs the full pass: index entries, extra-root walks, the
// supplemental scan under the primary root, then ancestor completion.
// With an absent rule set the result is empty and no traversal happens.
func (c *Collector) Collect() *Result {
	res := NewResult()
	if c.matcher.RuleCount() == 0 {
		c.logger.Warn("collector: no ignore rules loaded, nothing to collect")
		return res
	}

	indexed := c.collectFromIndex(res)
	c.collectExtraRoots(res)
	c.supplementalScan(res, indexed)
	c.completeAncestors(res)
	return res
}

// collectFromIndex classifies every path the index reports. Entries
// carrying a file extension are evaluated as files; every entry also
// contributes its parent directory to the directory predicate. Returns
// the set of paths the index covered, for the supplemental scan.
func (c *Collector) collectFromIndex(res *Result) map[string]struct{} {
	seen := make(map[string]struct{})
	if c.index == nil {
		return seen
	}
	paths, err := c.index.Paths()
	if err != nil {
		c.logger.Warn("collector: path index unavailable: %v", err)
		return seen
	}
	c.logger.Debug("collector: index reported %d paths", len(paths))

	for _, raw := range paths {
		p := ignore.Normalize(raw)
		if p == "" {
			continue
		}
		seen[p] = struct{}{}

		if path.Ext(p) != "" && c.matcher.Evaluate(p) {
			res.AddFile(p)
			c.addFileSidecar(res, p)
		}
		if parent := parentDir(p); parent != "" && c.matcher.IsDirIgnored(parent) {
			res.AddDir(parent)
			c.addDirSidecar(res, parent)
		}
	}
	return seen
}

// collectExtraRoots traverses each configured extra top-level directory.
func (c *Collector) collectExtraRoots(res *Result) {
	for _, name := range c.extraRoots {
		name = strings.TrimSpace(name)
		if name == "" || name == c.primaryRoot {
			continue
		}
		abs := filepath.Join(c.projectRoot, name)
		info, err := c.fsys.Stat(abs)
		if err != nil || !info.IsDir() {
			c.logger.Debug("collector: skipping extra root %q: not present", name)
			continue
		}
		// The root itself is classified too; an ignored but empty root
		// still has to appear in the output skeleton.
		c.classify(res, name, true)
		c.walkRoot(res, abs, name)
	}
}

// walkRoot classifies every entry beneath absRoot. relPrefix is absRoot's
// path relative to the project root. Traversal errors skip the affected
// sub-path; siblings and the rest of the tree continue.
func (c *Collector) walkRoot(res *Result, absRoot, relPrefix string) {
	_ = afero.Walk(c.fsys, absRoot, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			c.logger.Debug("collector: skipping %q: %v", p, err)
			if info != nil && info.IsDir() && p != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(absRoot, p)
		if relErr != nil || rel == "." {
			return nil
		}
		full := ignore.Normalize(path.Join(relPrefix, filepath.ToSlash(rel)))
		c.classify(res, full, info.IsDir())
		return nil
	})
}

// supplementalScan visits entries under the primary root that the index
// omits by naming convention (hidden-prefixed names, or names containing
// the reserved marker) and classifies them like any walked entry.
func (c *Collector) supplementalScan(res *Result, indexed map[string]struct{}) {
	absPrimary := filepath.Join(c.projectRoot, c.primaryRoot)
	if ok, _ := afero.DirExists(c.fsys, absPrimary); !ok {
		return
	}
	_ = afero.Walk(c.fsys, absPrimary, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			c.logger.Debug("collector: skipping %q: %v", p, err)
			if info != nil && info.IsDir() && p != absPrimary {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(c.projectRoot, p)
		if relErr != nil || rel == "." {
			return nil
		}
		full := ignore.Normalize(filepath.ToSlash(rel))
		if full == c.primaryRoot {
			return nil
		}
		if _, ok := indexed[full]; ok {
			return nil
		}
		if !omittedByConvention(full) {
			return nil
		}
		c.classify(res, full, info.IsDir())
		return nil
	})
}

// classify runs one entry through the evaluator, adding it and its
// sidecar to the result when ignored. Ignored directories are still
// descended into: file membership is independent of directory membership.
func (c *Collector) classify(res *Result, p string, isDir bool) {
	if isDir {
		if c.matcher.IsDirIgnored(p) {
			res.AddDir(p)
			c.addDirSidecar(res, p)
		}
		return
	}
	if c.matcher.Evaluate(p) {
		res.AddFile(p)
		c.addFileSidecar(res, p)
	}
}

// addFileSidecar adds an ignored file's sidecar when it exists on disk.
// File sidecars travel with their owner unconditionally, even when a
// negation rule matches the sidecar path itself.
func (c *Collector) addFileSidecar(res *Result, file string) {
	sc := file + c.sidecarSuffix
	if c.exists(sc) {
		res.AddFile(sc)
	}
}

// addDirSidecar adds a directory's sidecar when it exists on disk, unless
// the sidecar's own last match is a negation.
func (c *Collector) addDirSidecar(res *Result, dir string) {
	sc := dir + c.sidecarSuffix
	if c.exists(sc) && c.matcher.LastMatchKind(sc) != ignore.MatchNegate {
		res.AddFile(sc)
	}
}

func (c *Collector) exists(rel string) bool {
	_, err := c.fsys.Stat(filepath.Join(c.projectRoot, filepath.FromSlash(rel)))
	return err == nil
}

// omittedByConvention reports whether any segment below the top-level
// root is hidden-prefixed or carries the reserved marker.
func omittedByConvention(p string) bool {
	segments := strings.Split(p, "/")
	if len(segments) < 2 {
		return false
	}
	for _, s := range segments[1:] {
		if strings.HasPrefix(s, ".") || strings.ContainsRune(s, indexMarker) {
			return true
		}
	}
	return false
}

// parentDir returns the proper parent of a project-relative path, or ""
// at the top level.
func parentDir(p string) string {
	d := path.Dir(p)
	if d == "." || d == "/" || d == p {
		return ""
	}
	return d
}
