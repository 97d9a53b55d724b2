package question

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Required fields checked before a record becomes a Question. Their absence
// is a hard parse error.
var requiredFields = []string{"id", "topic", "question", "style", "difficulty"}

// ParseResult carries the parsed questions plus non-fatal warnings (unknown
// enum values and the like). Warnings never abort a parse.
type ParseResult struct {
	Questions []*Question
	Warnings  []string
}

// LoadJSONL reads a question bank from a JSONL file.
func LoadJSONL(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening question bank: %w", err)
	}
	defer f.Close()

	res, err := ParseJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// ParseJSONL parses one JSON object per line. An unparsable line or a record
// missing a required field aborts the parse with an error naming the line and
// record id where possible.
func ParseJSONL(r io.Reader) (*ParseResult, error) {
	res := &ParseResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}

		q, warnings, err := FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		res.Questions = append(res.Questions, q)
		res.Warnings = append(res.Warnings, warnings...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}

	if len(res.Questions) == 0 {
		return nil, fmt.Errorf("no questions found")
	}
	return res, nil
}

// FromMap normalizes a decoded record into a Question. It accepts the
// `bloom` alias for bloom_level, defaults language to "en", and defaults the
// list fields to empty slices.
func FromMap(raw map[string]any) (*Question, []string, error) {
	var missing []string
	for _, field := range requiredFields {
		if v, ok := raw[field]; !ok || v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		id, _ := raw["id"].(string)
		if id == "" {
			id = "unknown"
		}
		return nil, nil, fmt.Errorf("question %s: missing required fields: %s", id, strings.Join(missing, ", "))
	}

	// Round-trip through JSON to fill the typed struct, then patch the
	// fields that need normalization.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("re-encoding record: %w", err)
	}
	q := &Question{}
	if err := json.Unmarshal(data, q); err != nil {
		id, _ := raw["id"].(string)
		return nil, nil, fmt.Errorf("question %s: %w", id, err)
	}

	if q.BloomLevel == "" {
		if alias, ok := raw["bloom"].(string); ok {
			q.BloomLevel = alias
		}
	}
	if q.Language == "" {
		q.Language = "en"
	}
	if q.Subtopics == nil {
		q.Subtopics = []string{}
	}
	if q.Keywords == nil {
		q.Keywords = []string{}
	}
	if q.Prerequisites == nil {
		q.Prerequisites = []string{}
	}

	var warnings []string
	if !ValidStyles[q.Style] {
		warnings = append(warnings, fmt.Sprintf("question %s: unknown style %q", q.ID, q.Style))
	}
	if !ValidDifficulties[q.Difficulty] {
		warnings = append(warnings, fmt.Sprintf("question %s: unknown difficulty %q", q.ID, q.Difficulty))
	}
	if q.BloomLevel != "" && !ValidBloomLevels[q.BloomLevel] {
		warnings = append(warnings, fmt.Sprintf("question %s: unknown bloom level %q", q.ID, q.BloomLevel))
	}

	return q, warnings, nil
}

// WriteJSONL writes questions one JSON object per line. Absent optional
// fields are omitted.
func WriteJSONL(w io.Writer, questions []*Question) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, q := range questions {
		if err := enc.Encode(q); err != nil {
			return fmt.Errorf("encoding question %s: %w", q.ID, err)
		}
	}
	return nil
}

// SaveJSONL writes a question bank to a JSONL file, creating parent
// directories as needed.
func SaveJSONL(path string, questions []*Question) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteJSONL(f, questions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// splitWords splits on whitespace, dropping empty tokens.
func splitWords(s string) []string {
	return strings.Fields(s)
}
