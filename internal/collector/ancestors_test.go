package collector

import (
	"testing"

	"github.com/bethropolis/ignore-export/internal/ignore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteAncestors_AddsIgnoredAncestorDirs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, "/proj", "Library/a/b/deep.bin")
	m := ignore.New([]string{"Library/"})

	c := New(fsys, "/proj", "Assets", m, WithExtraRoots([]string{"Library"}))
	res := c.Collect()

	assert.Equal(t, []string{"Library/a/b/deep.bin"}, res.Files())
	assert.Equal(t, []string{"Library", "Library/a", "Library/a/b"}, res.Dirs())
}

func TestCompleteAncestors_EmptyNestedDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/proj/Library/empty/deeper", 0o755))
	m := ignore.New([]string{"Library/"})

	c := New(fsys, "/proj", "Assets", m, WithExtraRoots([]string{"Library"}))
	res := c.Collect()

	// No file was collected anywhere beneath, yet the skeleton can still
	// be rebuilt.
	assert.Empty(t, res.Files())
	assert.Equal(t, []string{"Library", "Library/empty", "Library/empty/deeper"}, res.Dirs())
}

func TestCompleteAncestors_AncestorSidecars(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, "/proj",
		"Assets/gen/out/result.user",
		"Assets/gen.meta",
		"Assets/gen/out.meta",
	)
	m := ignore.New([]string{"*.user"})
	idx := &fakeIndex{paths: []string{"Assets/gen/out/result.user"}}

	c := New(fsys, "/proj", "Assets", m, WithIndex(idx))
	res := c.Collect()

	// The folders' own metadata travels with the pulled-in contents even
	// though the folders themselves are not ignored.
	assert.True(t, res.HasFile("Assets/gen.meta"))
	assert.True(t, res.HasFile("Assets/gen/out.meta"))
	assert.False(t, res.HasDir("Assets/gen"))
}

func TestCompleteAncestors_AncestorSidecarNegated(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, "/proj",
		"Assets/gen/out/result.user",
		"Assets/gen.meta",
	)
	m := ignore.New([]string{"*.user", "!gen.meta"})
	idx := &fakeIndex{paths: []string{"Assets/gen/out/result.user"}}

	c := New(fsys, "/proj", "Assets", m, WithIndex(idx))
	res := c.Collect()

	assert.True(t, res.HasFile("Assets/gen/out/result.user"))
	assert.False(t, res.HasFile("Assets/gen.meta"))
}

func TestCompleteAncestors_Idempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTree(t, fsys, "/proj",
		"Library/a/b/deep.bin",
		"Library.meta",
		"Assets/proj.user",
	)
	m := ignore.New([]string{"Library/", "*.user"})
	idx := &fakeIndex{paths: []string{"Assets/proj.user"}}

	c := New(fsys, "/proj", "Assets", m,
		WithIndex(idx),
		WithExtraRoots([]string{"Library"}),
	)
	res := c.Collect()

	files, dirs := res.Files(), res.Dirs()
	c.completeAncestors(res)
	assert.Equal(t, files, res.Files())
	assert.Equal(t, dirs, res.Dirs())
}
