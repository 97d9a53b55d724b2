// Package output renders validation summaries and refinement reports for the
// console, JSON, and Markdown.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/qforge/internal/transform"
	"github.com/dotcommander/qforge/internal/validate"
)

// RefineReport pairs a refinement pass with the batch summaries measured
// before and after it.
type RefineReport struct {
	Before validate.Summary      `json:"before"`
	After  validate.Summary      `json:"after"`
	Result transform.BatchResult `json:"result"`
}

// ConsoleFormatter writes styled terminal output.
type ConsoleFormatter struct {
	out     io.Writer
	quiet   bool
	verbose bool

	headerStyle lipgloss.Style
	passStyle   lipgloss.Style
	failStyle   lipgloss.Style
	dimStyle    lipgloss.Style
}

// NewConsoleFormatter creates a console formatter writing to out.
func NewConsoleFormatter(out io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		out:         out,
		quiet:       quiet,
		verbose:     verbose,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), // cyan
		passStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // green
		failStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),             // red
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),             // gray
	}
}

// FormatSummary prints a batch validation summary.
func (f *ConsoleFormatter) FormatSummary(summary validate.Summary) error {
	if f.quiet {
		return nil
	}

	fmt.Fprintln(f.out, f.headerStyle.Render("QUALITY DISTRIBUTION"))
	f.printDistribution(summary)
	fmt.Fprintln(f.out)

	scoreStyle := f.passStyle
	if summary.AverageScore < summary.Threshold {
		scoreStyle = f.failStyle
	}
	fmt.Fprintf(f.out, "Average score: %s (target %.1f)\n",
		scoreStyle.Render(fmt.Sprintf("%.2f/5.00", summary.AverageScore)), summary.Threshold)

	passRate := 100 * float64(summary.Passed) / float64(summary.Total)
	fmt.Fprintf(f.out, "Passing: %d/%d (%.1f%%)\n", summary.Passed, summary.Total, passRate)

	if summary.Failed > 0 {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, f.headerStyle.Render("QUESTIONS NEEDING REFINEMENT"))

		shown := summary.FailedQuestions
		if !f.verbose && len(shown) > 10 {
			shown = shown[:10]
		}
		for _, fq := range shown {
			fmt.Fprintf(f.out, "  %s [%s] %.2f\n", f.failStyle.Render("✗"), fq.ID, fq.Score)
			fmt.Fprintf(f.out, "    %s\n", f.dimStyle.Render(fq.Question))
			if fq.TopGap != nil {
				fmt.Fprintf(f.out, "    %s\n",
					f.dimStyle.Render(fmt.Sprintf("weakest: %s (%.2f)", fq.TopGap.Criterion, fq.TopGap.Score)))
			}
		}
		if remaining := len(summary.FailedQuestions) - len(shown); remaining > 0 {
			fmt.Fprintf(f.out, "  %s\n", f.dimStyle.Render(fmt.Sprintf("... and %d more", remaining)))
		}
	}

	return nil
}

func (f *ConsoleFormatter) printDistribution(summary validate.Summary) {
	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Excellent (≥4.8)", summary.Distribution.Excellent, f.passStyle},
		{"Very Good (4.5-4.7)", summary.Distribution.VeryGood, f.passStyle},
		{"Good (4.0-4.4)", summary.Distribution.Good, f.dimStyle},
		{"Adequate (3.5-3.9)", summary.Distribution.Adequate, f.dimStyle},
		{"Needs Work (3.0-3.4)", summary.Distribution.NeedsWork, f.failStyle},
		{"Poor (<3.0)", summary.Distribution.Poor, f.failStyle},
	}

	for _, row := range rows {
		pct := 100 * float64(row.count) / float64(summary.Total)
		fmt.Fprintf(f.out, "  %-22s %s\n", row.label,
			row.style.Render(fmt.Sprintf("%3d (%.1f%%)", row.count, pct)))
	}
}

// FormatRefine prints a before/after refinement report.
func (f *ConsoleFormatter) FormatRefine(report RefineReport) error {
	if f.quiet {
		return nil
	}

	fmt.Fprintln(f.out, f.headerStyle.Render("REFINEMENT RESULTS"))
	fmt.Fprintf(f.out, "  Average score: %.2f → %s (%+.2f)\n",
		report.Before.AverageScore,
		f.passStyle.Render(fmt.Sprintf("%.2f", report.After.AverageScore)),
		report.After.AverageScore-report.Before.AverageScore)
	fmt.Fprintf(f.out, "  Passing: %d → %s of %d\n",
		report.Before.Passed,
		f.passStyle.Render(fmt.Sprintf("%d", report.After.Passed)),
		report.After.Total)
	fmt.Fprintf(f.out, "  Transformed: %d, unchanged: %d\n",
		report.Result.Transformed, report.Result.Unchanged)

	if len(report.Result.StrategiesUsed) > 0 {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, f.headerStyle.Render("STRATEGIES USED"))
		for _, name := range sortedKeys(report.Result.StrategiesUsed) {
			fmt.Fprintf(f.out, "  %-28s %d\n", name, report.Result.StrategiesUsed[name])
		}
		fmt.Fprintf(f.out, "  mean improvement: %+.2f\n", report.Result.AvgImprovement)
	}

	return nil
}
