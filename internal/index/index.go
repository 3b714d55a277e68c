// Package index provides a disk-backed implementation of the collector's
// path index seam.
package index

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/ignore-export/internal/utils"
	"github.com/spf13/afero"
)

// Index enumerates files under the primary managed root the way the
// external index collaborator does: entries whose name is hidden-prefixed
// or contains the reserved '~' marker are omitted, along with everything
// beneath an omitted directory. The collector's supplemental scan
// compensates for those omissions.
type Index struct {
	fsys        afero.Fs
	projectRoot string
	primaryRoot string
	logger      utils.Logger
}

// New creates an Index rooted at projectRoot/primaryRoot.
func New(fsys afero.Fs, projectRoot, primaryRoot string, logger utils.Logger) *Index {
	if logger == nil {
		logger = utils.NoopLogger{}
	}
	return &Index{
		fsys:        fsys,
		projectRoot: projectRoot,
		primaryRoot: primaryRoot,
		logger:      logger,
	}
}

// Paths returns the project-relative paths of every indexed file, in
// ordinal order. Unreadable sub-paths contribute nothing; enumeration
// continues with siblings.
func (ix *Index) Paths() ([]string, error) {
	abs := filepath.Join(ix.projectRoot, ix.primaryRoot)
	if ok, err := afero.DirExists(ix.fsys, abs); err != nil || !ok {
		return nil, err
	}

	var out []string
	err := afero.Walk(ix.fsys, abs, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			ix.logger.Debug("index: skipping %q: %v", p, err)
			if info != nil && info.IsDir() && p != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if p == abs {
			return nil
		}
		if omitted(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() {
			rel, relErr := filepath.Rel(ix.projectRoot, p)
			if relErr != nil {
				return nil
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// omitted reports whether the index skips a name by convention.
func omitted(name string) bool {
	return strings.HasPrefix(name, ".") || strings.ContainsRune(name, '~')
}
