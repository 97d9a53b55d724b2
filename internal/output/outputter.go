package output

import (
	"fmt"
	"io"

	"github.com/dotcommander/qforge/internal/validate"
)

// Formatter renders engine reports in one output format.
type Formatter interface {
	FormatSummary(summary validate.Summary) error
	FormatRefine(report RefineReport) error
}

// New selects a formatter by name: console, json, or markdown.
func New(format string, out io.Writer, path string, quiet, verbose bool) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(out, quiet, verbose), nil
	case "json":
		return NewJSONFormatter(out, path), nil
	case "markdown":
		return NewMarkdownFormatter(out, path), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (must be console, json, or markdown)", format)
	}
}
