// Package discovery expands question-bank file arguments, including
// doublestar glob patterns like "banks/**/*.jsonl".
package discovery

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns resolves each argument to a list of existing files. Plain
// paths are checked for existence; glob patterns are expanded. The result is
// de-duplicated and sorted, and an argument matching nothing is an error so
// typos don't silently validate an empty bank.
func ExpandPatterns(args []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	for _, arg := range args {
		if !hasGlobMeta(arg) {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("question bank not found: %s", arg)
			}
			if !seen[arg] {
				seen[arg] = true
				files = append(files, arg)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern %q", arg)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasGlobMeta(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
