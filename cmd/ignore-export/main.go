package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bethropolis/ignore-export/internal/app"
	"github.com/bethropolis/ignore-export/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ignore-export [project-root]",
		Short: "Collect ignored files and directories for export",
		Long: `ignore-export reads a gitignore-style rule file at the project root,
walks the primary managed root plus any configured extra top-level
directories, and emits the complete set of ignored files and ignored
directories - including ancestor directories needed to rebuild an empty
directory skeleton and sidecar metadata files that travel with ignored
entries. The tool only computes the sets; copying is left to an exporter.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("project_root", args[0])
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			info, err := os.Stat(cfg.ProjectRoot)
			if err != nil {
				return fmt.Errorf("project root %q: %w", cfg.ProjectRoot, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("project root %q is not a directory", cfg.ProjectRoot)
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return application.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("primary-root", config.DefaultPrimaryRoot, "Name of the primary managed root")
	flags.StringSlice("extra-root", nil, "Additional top-level directory to scan (repeatable)")
	flags.String("rule-file", config.DefaultRuleFile, "Ignore-rule file, relative to the project root")
	flags.String("sidecar-suffix", config.DefaultSidecarSuffix, "Suffix of sidecar metadata files")
	flags.String("output", "", "Write results to a file instead of stdout")
	flags.Bool("json", false, "Emit results as JSON")
	flags.String("log-level", "info", "Log level (debug, info, warn, error, none)")
	flags.Bool("no-color", false, "Disable color output")
	flags.Bool("watch", false, "Keep running and refresh on an interval")
	flags.Duration("interval", config.DefaultInterval, "Refresh interval in watch mode")

	bindings := map[string]string{
		"primary_root":   "primary-root",
		"extra_roots":    "extra-root",
		"rule_file":      "rule-file",
		"sidecar_suffix": "sidecar-suffix",
		"output":         "output",
		"json":           "json",
		"log_level":      "log-level",
		"no_color":       "no-color",
		"watch":          "watch",
		"interval":       "interval",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}
