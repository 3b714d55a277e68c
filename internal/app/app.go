// Package app wires configuration, rule loading, collection and output.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/ignore-export/internal/collector"
	"github.com/bethropolis/ignore-export/internal/config"
	"github.com/bethropolis/ignore-export/internal/ignore"
	"github.com/bethropolis/ignore-export/internal/index"
	"github.com/bethropolis/ignore-export/internal/logger"
	"github.com/bethropolis/ignore-export/internal/printer"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	fsys   afero.Fs
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("app: creating output file: %w", err)
		}
		output = file
	}

	log := logger.New(os.Stderr, cfg.UseColors)
	log.SetLevel(cfg.LogLevel)

	return &App{
		cfg:    cfg,
		log:    log,
		fsys:   afero.NewOsFs(),
		Output: output,
	}, nil
}

// Close releases the output file if one was opened.
func (a *App) Close() {
	if f, ok := a.Output.(*os.File); ok && f != os.Stdout {
		f.Close()
	}
}

// Run executes collection passes. Without watch mode a single pass runs
// and Run returns; with it, passes repeat on the configured interval
// until ctx is cancelled, and overlapping requests are dropped.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.Watch {
		return a.runOnce()
	}
	a.log.Info("Watching %s every %v.", a.cfg.ProjectRoot, a.cfg.Interval)
	return NewRefresher(a.runOnce, a.cfg.Interval, a.log).Run(ctx)
}

// runOnce builds a fresh rule set and collection pass. Caches never
// survive into the next pass; only the compiled rules could be shared,
// and they are rebuilt too so a rule-source change is always picked up.
func (a *App) runOnce() error {
	start := time.Now()

	rulePath := filepath.Join(a.cfg.ProjectRoot, a.cfg.RuleFile)
	matcher := ignore.FromFile(a.fsys, rulePath,
		ignore.WithLogger(a.log),
		ignore.WithProbeSegment(a.cfg.ProbeSegment),
	)
	if matcher == nil {
		a.log.Warn("Rule file %q missing or unreadable; nothing is ignored.", rulePath)
	} else {
		a.log.Debug("Loaded %d rules from %s.", matcher.RuleCount(), rulePath)
	}

	idx := index.New(a.fsys, a.cfg.ProjectRoot, a.cfg.PrimaryRoot, a.log)
	coll := collector.New(a.fsys, a.cfg.ProjectRoot, a.cfg.PrimaryRoot, matcher,
		collector.WithLogger(a.log),
		collector.WithIndex(idx),
		collector.WithExtraRoots(a.cfg.ExtraRoots),
		collector.WithSidecarSuffix(a.cfg.SidecarSuffix),
	)
	res := coll.Collect()

	// In watch mode the same handle serves every pass; rewind so the
	// file holds the latest snapshot instead of accumulating them.
	if f, ok := a.Output.(*os.File); ok && f != os.Stdout {
		if err := f.Truncate(0); err == nil {
			_, _ = f.Seek(0, io.SeekStart)
		}
	}

	p := printer.New().
		WithOutput(a.Output).
		WithColors(a.cfg.UseColors).
		WithJSON(a.cfg.JSONOutput)
	if err := p.PrintResult(res); err != nil {
		return fmt.Errorf("app: writing result: %w", err)
	}

	files, dirs := res.Counts()
	a.log.Info("Collected %d ignored files and %d ignored directories in %v.",
		files, dirs, time.Since(start).Round(time.Millisecond))
	return nil
}
