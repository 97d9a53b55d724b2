package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dotcommander/qforge/internal/transform"
	"github.com/dotcommander/qforge/internal/validate"
)

func sampleSummary() validate.Summary {
	return validate.Summary{
		Total: 4, Passed: 3, Failed: 1,
		AverageScore: 4.52, Threshold: 4.8,
		Distribution: validate.Distribution{Excellent: 2, VeryGood: 1, NeedsWork: 1},
		FailedQuestions: []validate.FailedQuestion{
			{
				ID: "q7", Question: "What | is a tuple?", Score: 3.21,
				TopGap: &validate.CriterionGap{Criterion: "rag", Score: 2.5, Gap: 2.0},
			},
		},
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("xml", &bytes.Buffer{}, "", false, false); err == nil {
		t.Fatal("expected error for an unsupported format")
	}
}

func TestJSONFormatterSummary(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf, "")

	if err := f.FormatSummary(sampleSummary()); err != nil {
		t.Fatalf("FormatSummary failed: %v", err)
	}

	var decoded validate.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Total != 4 || decoded.AverageScore != 4.52 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestMarkdownFormatterSummary(t *testing.T) {
	var buf bytes.Buffer
	f := NewMarkdownFormatter(&buf, "")

	if err := f.FormatSummary(sampleSummary()); err != nil {
		t.Fatalf("FormatSummary failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Question Bank Quality Report") {
		t.Error("missing report heading")
	}
	if !strings.Contains(out, `What \| is a tuple?`) {
		t.Error("pipe characters in question text must be escaped")
	}
	if !strings.Contains(out, "| q7 | 3.21 |") {
		t.Error("missing failed-question row")
	}
}

func TestConsoleFormatterQuiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(&buf, true, false)

	if err := f.FormatSummary(sampleSummary()); err != nil {
		t.Fatalf("FormatSummary failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode wrote %d bytes", buf.Len())
	}
}

func TestConsoleFormatterRefine(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(&buf, false, false)

	report := RefineReport{
		Before: validate.Summary{Total: 4, Passed: 1, AverageScore: 3.8},
		After:  validate.Summary{Total: 4, Passed: 3, AverageScore: 4.6},
		Result: transform.BatchResult{
			Total: 4, Transformed: 2, Unchanged: 1,
			StrategiesUsed: map[string]int{"expand_single_word": 2},
			AvgImprovement: 0.4,
		},
	}

	if err := f.FormatRefine(report); err != nil {
		t.Fatalf("FormatRefine failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "expand_single_word") {
		t.Error("strategy tally missing from console output")
	}
	if !strings.Contains(out, "3.80") || !strings.Contains(out, "4.60") {
		t.Error("before/after averages missing from console output")
	}
}
