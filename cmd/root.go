// Package cmd implements the qforge command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath   string
	outputFormat string
	outputFile   string
	quiet        bool
	verbose      bool
	strict       bool
)

var rootCmd = &cobra.Command{
	Use:   "qforge",
	Short: "QForge - quality scoring and refinement for question banks",
	Long: `QForge scores educational question banks against a seven-criterion
quality rubric and applies targeted rewrite strategies to raise weak
questions toward the flagship threshold.

Question banks are JSONL files, one question record per line. Use 'analyze'
to score a bank, 'refine' to improve it, and 'report' to compare banks.
Running qforge with bank files directly is shorthand for 'qforge analyze'.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(cmd, args)
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to qforge.yaml (built-in defaults if omitted)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json/markdown reports")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Validate records against the question schema")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("QFORGE")
	viper.AutomaticEnv()
}
