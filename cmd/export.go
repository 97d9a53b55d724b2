package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/store"
)

var (
	exportQuery string
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export <database>",
	Short: "Export a SQLite question bank to JSONL",
	Long: `Export reads question records out of a SQLite database and writes them
as a JSONL bank ready for analyze and refine. The default query expects a
'questions' table with the common column names; override it with --query
for other schemas.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportQuery, "query", "", "SQL query selecting the question columns")
	exportCmd.Flags().StringVarP(&exportOut, "save", "s", "questions.jsonl", "Output JSONL file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := store.Open(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	questions, warnings, err := db.LoadQuestions(exportQuery)
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if len(questions) == 0 {
		return fmt.Errorf("no questions found in %s", args[0])
	}

	if err := question.SaveJSONL(exportOut, questions); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d questions to %s\n", len(questions), exportOut)
	}
	return nil
}
