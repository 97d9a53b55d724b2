package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/qforge/internal/output"
	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/transform"
	"github.com/dotcommander/qforge/internal/validate"
)

var (
	refineThreshold float64
	refineOut       string
	refineInPlace   bool
)

var refineCmd = &cobra.Command{
	Use:   "refine [files or globs...]",
	Short: "Apply one refinement pass to questions below the threshold",
	Long: `Refine scores every question, picks the highest-priority issue on each
failing one, and applies the matching rewrite strategy. Each question gets
at most one transformation per run; run refine again to address remaining
issues.

The refined bank is written with --save (or back to the input with
--in-place); without either, refine only reports what would improve.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRefine,
}

func init() {
	refineCmd.Flags().Float64VarP(&refineThreshold, "threshold", "t", 0, "Refinement threshold override (default from config)")
	refineCmd.Flags().StringVarP(&refineOut, "save", "s", "", "Write the refined bank to this JSONL file")
	refineCmd.Flags().BoolVar(&refineInPlace, "in-place", false, "Overwrite the input bank (single file only)")
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	if refineInPlace && len(args) != 1 {
		return fmt.Errorf("--in-place requires exactly one input file")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	questions, warnings, err := loadBanks(args)
	if err != nil {
		return err
	}
	printWarnings(warnings)

	threshold := cfg.Scoring.Threshold
	if refineThreshold > 0 {
		threshold = refineThreshold
	}

	validator := validate.NewWithThreshold(cfg, threshold)
	before, err := validator.ValidateBatch(questions)
	if err != nil {
		return err
	}

	transformer := transform.New(cfg)
	result := transformer.Batch(questions, threshold)

	after, err := validator.ValidateBatch(questions)
	if err != nil {
		return err
	}

	formatter, err := output.New(outputFormat, cmd.OutOrStdout(), outputFile, quiet, verbose)
	if err != nil {
		return err
	}
	if err := formatter.FormatRefine(output.RefineReport{Before: before, After: after, Result: result}); err != nil {
		return err
	}

	dest := refineOut
	if refineInPlace {
		dest = args[0]
	}
	if dest != "" {
		if err := question.SaveJSONL(dest, questions); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d questions to %s\n", len(questions), dest)
		}
	}
	return nil
}
