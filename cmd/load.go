package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/discovery"
	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/schema"
)

// loadConfig loads the configuration named by --config, falling back to the
// built-in defaults when the flag is empty.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// loadBanks expands the file arguments and parses every matched bank into a
// single question list. With --strict, each record is additionally checked
// against the question schema and any violation aborts the load.
func loadBanks(args []string) ([]*question.Question, []string, error) {
	files, err := discovery.ExpandPatterns(args)
	if err != nil {
		return nil, nil, err
	}

	var questions []*question.Question
	var warnings []string
	for _, file := range files {
		res, err := question.LoadJSONL(file)
		if err != nil {
			return nil, nil, err
		}
		questions = append(questions, res.Questions...)
		warnings = append(warnings, res.Warnings...)
	}

	if strict {
		if err := strictValidate(files); err != nil {
			return nil, nil, err
		}
	}

	return questions, warnings, nil
}

// strictValidate re-reads the bank files as raw records and runs each through
// the CUE question schema.
func strictValidate(files []string) error {
	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}

	var violations []schema.ValidationError
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening question bank: %w", err)
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var raw map[string]any
			if err := json.Unmarshal(line, &raw); err != nil {
				continue // the lenient parse already reported this
			}
			violations = append(violations, validator.ValidateRecord(raw)...)
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return fmt.Errorf("reading question bank: %w", err)
		}
	}

	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "schema: [%s] %s\n", v.RecordID, v.Message)
		}
		return fmt.Errorf("%d record(s) failed schema validation", len(violations))
	}
	return nil
}

// printWarnings reports parse warnings unless --quiet is set.
func printWarnings(warnings []string) {
	if quiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
