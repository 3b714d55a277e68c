// Package config loads application settings from flags, environment and
// an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// Defaults model an asset-pipeline project layout.
const (
	DefaultPrimaryRoot   = "Assets"
	DefaultRuleFile      = ".exportignore"
	DefaultSidecarSuffix = ".meta"
	DefaultInterval      = 30 * time.Second
)

// Config holds all application configuration settings
type Config struct {
	// Layout settings
	ProjectRoot   string
	PrimaryRoot   string
	ExtraRoots    []string
	RuleFile      string
	SidecarSuffix string
	ProbeSegment  string

	// Output settings
	OutputFile string
	JSONOutput bool

	// Logging settings
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Refresh settings
	Watch    bool
	Interval time.Duration
}

// Load builds a Config from viper's merged settings: bound flags,
// IGNORE_EXPORT_* environment variables and an optional
// ignore-export.yaml next to the working directory.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("project_root", ".")
	v.SetDefault("primary_root", DefaultPrimaryRoot)
	v.SetDefault("rule_file", DefaultRuleFile)
	v.SetDefault("sidecar_suffix", DefaultSidecarSuffix)
	v.SetDefault("log_level", "info")
	v.SetDefault("interval", DefaultInterval)

	v.SetEnvPrefix("IGNORE_EXPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("ignore-export")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	c := &Config{
		ProjectRoot:   v.GetString("project_root"),
		PrimaryRoot:   v.GetString("primary_root"),
		ExtraRoots:    v.GetStringSlice("extra_roots"),
		RuleFile:      v.GetString("rule_file"),
		SidecarSuffix: v.GetString("sidecar_suffix"),
		ProbeSegment:  v.GetString("probe_segment"),
		OutputFile:    v.GetString("output"),
		JSONOutput:    v.GetBool("json"),
		LogLevel:      v.GetString("log_level"),
		NoColor:       v.GetBool("no_color"),
		Watch:         v.GetBool("watch"),
		Interval:      v.GetDuration("interval"),
	}

	abs, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("config: invalid project root %q: %w", c.ProjectRoot, err)
	}
	c.ProjectRoot = abs

	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c, nil
}
