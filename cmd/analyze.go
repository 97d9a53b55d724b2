package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/qforge/internal/output"
	"github.com/dotcommander/qforge/internal/validate"
)

var analyzeThreshold float64

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files or globs...]",
	Short: "Score question banks against the quality rubric",
	Long: `Analyze scores every question in the given banks across seven quality
criteria and reports the distribution, average, and failing questions.

Exits non-zero when any question falls below the threshold, so it can gate
a CI pipeline.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Float64VarP(&analyzeThreshold, "threshold", "t", 0, "Pass threshold override (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	questions, warnings, err := loadBanks(args)
	if err != nil {
		return err
	}
	printWarnings(warnings)

	validator := validate.New(cfg)
	if analyzeThreshold > 0 {
		validator = validate.NewWithThreshold(cfg, analyzeThreshold)
	}

	summary, err := validator.ValidateBatch(questions)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat, cmd.OutOrStdout(), outputFile, quiet, verbose)
	if err != nil {
		return err
	}
	if err := formatter.FormatSummary(summary); err != nil {
		return err
	}

	if summary.Failed > 0 {
		if !quiet {
			fmt.Fprintf(os.Stderr, "%d of %d questions below threshold %.1f\n",
				summary.Failed, summary.Total, summary.Threshold)
		}
		os.Exit(1)
	}
	return nil
}
