package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/qforge/internal/output"
	"github.com/dotcommander/qforge/internal/validate"
)

var reportCompare string

var reportCmd = &cobra.Command{
	Use:   "report [files or globs...]",
	Short: "Generate a quality report for question banks",
	Long: `Report produces the quality summary without gating: it never exits
non-zero for failing questions. With --compare, the main arguments are
treated as the "after" bank and the compared file as the "before" bank,
producing a delta report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCompare, "compare", "", "Baseline bank to diff the report against")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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
	summary, err := validator.ValidateBatch(questions)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat, cmd.OutOrStdout(), outputFile, quiet, verbose)
	if err != nil {
		return err
	}

	if reportCompare == "" {
		return formatter.FormatSummary(summary)
	}

	baseline, baseWarnings, err := loadBanks([]string{reportCompare})
	if err != nil {
		return fmt.Errorf("loading baseline: %w", err)
	}
	printWarnings(baseWarnings)

	before, err := validator.ValidateBatch(baseline)
	if err != nil {
		return err
	}

	return formatter.FormatRefine(output.RefineReport{Before: before, After: summary})
}
