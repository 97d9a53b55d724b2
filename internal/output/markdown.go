package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dotcommander/qforge/internal/validate"
)

// MarkdownFormatter renders reports as Markdown suitable for committing next
// to a question bank.
type MarkdownFormatter struct {
	out  io.Writer
	path string
}

// NewMarkdownFormatter creates a Markdown formatter. A non-empty path wins
// over out.
func NewMarkdownFormatter(out io.Writer, path string) *MarkdownFormatter {
	return &MarkdownFormatter{out: out, path: path}
}

// FormatSummary renders a batch validation summary.
func (f *MarkdownFormatter) FormatSummary(summary validate.Summary) error {
	var b strings.Builder

	b.WriteString("# Question Bank Quality Report\n\n")
	fmt.Fprintf(&b, "- Total questions: %d\n", summary.Total)
	fmt.Fprintf(&b, "- Average score: %.2f/5.00 (target %.1f)\n", summary.AverageScore, summary.Threshold)
	fmt.Fprintf(&b, "- Passing: %d (%.1f%%)\n\n", summary.Passed,
		100*float64(summary.Passed)/float64(summary.Total))

	b.WriteString("## Distribution\n\n")
	b.WriteString("| Band | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Excellent (≥4.8) | %d |\n", summary.Distribution.Excellent)
	fmt.Fprintf(&b, "| Very Good (4.5-4.7) | %d |\n", summary.Distribution.VeryGood)
	fmt.Fprintf(&b, "| Good (4.0-4.4) | %d |\n", summary.Distribution.Good)
	fmt.Fprintf(&b, "| Adequate (3.5-3.9) | %d |\n", summary.Distribution.Adequate)
	fmt.Fprintf(&b, "| Needs Work (3.0-3.4) | %d |\n", summary.Distribution.NeedsWork)
	fmt.Fprintf(&b, "| Poor (<3.0) | %d |\n", summary.Distribution.Poor)

	if len(summary.FailedQuestions) > 0 {
		b.WriteString("\n## Questions Needing Refinement\n\n")
		b.WriteString("| ID | Score | Question | Weakest Criterion |\n|---|---|---|---|\n")
		for _, fq := range summary.FailedQuestions {
			weakest := "-"
			if fq.TopGap != nil {
				weakest = fmt.Sprintf("%s (%.2f)", fq.TopGap.Criterion, fq.TopGap.Score)
			}
			fmt.Fprintf(&b, "| %s | %.2f | %s | %s |\n",
				fq.ID, fq.Score, escapePipes(fq.Question), weakest)
		}
	}

	return f.write(b.String())
}

// FormatRefine renders a before/after refinement report.
func (f *MarkdownFormatter) FormatRefine(report RefineReport) error {
	var b strings.Builder

	b.WriteString("# Refinement Report\n\n")
	b.WriteString("| Metric | Before | After | Change |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| Average score | %.2f | %.2f | %+.2f |\n",
		report.Before.AverageScore, report.After.AverageScore,
		report.After.AverageScore-report.Before.AverageScore)
	fmt.Fprintf(&b, "| Passing | %d | %d | %+d |\n",
		report.Before.Passed, report.After.Passed,
		report.After.Passed-report.Before.Passed)
	fmt.Fprintf(&b, "| Transformed | - | %d | - |\n", report.Result.Transformed)

	if len(report.Result.StrategiesUsed) > 0 {
		b.WriteString("\n## Strategies Used\n\n| Strategy | Count |\n|---|---|\n")
		for _, name := range sortedKeys(report.Result.StrategiesUsed) {
			fmt.Fprintf(&b, "| %s | %d |\n", name, report.Result.StrategiesUsed[name])
		}
	}

	return f.write(b.String())
}

func (f *MarkdownFormatter) write(content string) error {
	if f.path != "" {
		if err := os.WriteFile(f.path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing report %s: %w", f.path, err)
		}
		return nil
	}
	_, err := io.WriteString(f.out, content)
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
