package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/qforge/internal/validate"
)

// JSONFormatter writes reports as indented JSON, to a file or a writer.
type JSONFormatter struct {
	out  io.Writer
	path string
}

// NewJSONFormatter creates a JSON formatter. A non-empty path wins over out.
func NewJSONFormatter(out io.Writer, path string) *JSONFormatter {
	return &JSONFormatter{out: out, path: path}
}

// FormatSummary writes a batch validation summary.
func (f *JSONFormatter) FormatSummary(summary validate.Summary) error {
	return f.write(summary)
}

// FormatRefine writes a before/after refinement report.
func (f *JSONFormatter) FormatRefine(report RefineReport) error {
	return f.write(report)
}

func (f *JSONFormatter) write(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if f.path != "" {
		if err := os.WriteFile(f.path, data, 0644); err != nil {
			return fmt.Errorf("writing report %s: %w", f.path, err)
		}
		return nil
	}

	_, err = f.out.Write(data)
	return err
}
