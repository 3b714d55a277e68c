package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bethropolis/ignore-export/internal/config"
	"github.com/bethropolis/ignore-export/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(cfg *config.Config, fsys afero.Fs, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		log:    logger.New(io.Discard, false),
		fsys:   fsys,
		Output: out,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		ProjectRoot:   "/proj",
		PrimaryRoot:   "Assets",
		ExtraRoots:    []string{"Library"},
		RuleFile:      ".exportignore",
		SidecarSuffix: ".meta",
		LogLevel:      "none",
		JSONOutput:    true,
		Interval:      time.Second,
	}
}

func TestApp_RunOnce(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/.exportignore",
		[]byte("Library/\n*.user\n!important.user\n"), 0o644))
	for _, p := range []string{
		"/proj/Assets/proj.user",
		"/proj/Assets/important.user",
		"/proj/Assets/src/main.txt",
		"/proj/Library/cache.bin",
	} {
		require.NoError(t, afero.WriteFile(fsys, p, []byte("x"), 0o644))
	}

	var buf bytes.Buffer
	a := testApp(testConfig(), fsys, &buf)
	require.NoError(t, a.runOnce())

	var got struct {
		Files []string `json:"files"`
		Dirs  []string `json:"dirs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"Assets/proj.user", "Library/cache.bin"}, got.Files)
	assert.Equal(t, []string{"Library"}, got.Dirs)
}

func TestApp_RunOnce_RewritesOutputFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/.exportignore", []byte("*.user\n"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/Assets/a.user", []byte("x"), 0o644))

	out, err := os.Create(filepath.Join(t.TempDir(), "result.json"))
	require.NoError(t, err)
	defer out.Close()

	a := testApp(testConfig(), fsys, out)
	require.NoError(t, a.runOnce())
	require.NoError(t, a.runOnce())

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.JSONEq(t, `{"files":["Assets/a.user"],"dirs":[]}`, string(data),
		"repeated passes replace the file instead of appending")
}

func TestApp_RunOnce_MissingRuleFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/Assets/a.user", []byte("x"), 0o644))

	var buf bytes.Buffer
	a := testApp(testConfig(), fsys, &buf)
	require.NoError(t, a.runOnce())

	assert.JSONEq(t, `{"files":[],"dirs":[]}`, buf.String())
}
