// Package printer handles output formatting of collection results
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/ignore-export/internal/collector"
	"github.com/fatih/color"
)

// Printer writes a collection result to the configured destination
type Printer struct {
	output     io.Writer
	useColors  bool
	jsonOutput bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// jsonResult is the JSON output shape
type jsonResult struct {
	Files []string `json:"files"`
	Dirs  []string `json:"dirs"`
}

// PrintResult writes the ignored-directory and ignored-file sets in
// ordinal order.
func (p *Printer) PrintResult(res *collector.Result) error {
	files, dirs := res.Files(), res.Dirs()

	if p.jsonOutput {
		if files == nil {
			files = []string{}
		}
		if dirs == nil {
			dirs = []string{}
		}
		enc := json.NewEncoder(p.output)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonResult{Files: files, Dirs: dirs})
	}

	heading := func(s string) string {
		if p.useColors {
			return color.CyanString(s)
		}
		return s
	}

	fmt.Fprintf(p.output, "%s (%d)\n", heading("Ignored directories"), len(dirs))
	for _, d := range dirs {
		fmt.Fprintf(p.output, "  %s/\n", d)
	}
	fmt.Fprintf(p.output, "%s (%d)\n", heading("Ignored files"), len(files))
	for _, f := range files {
		fmt.Fprintf(p.output, "  %s\n", f)
	}
	return nil
}
