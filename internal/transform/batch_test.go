package transform

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/question"
)

func TestBatchSkipsPassingQuestions(t *testing.T) {
	tr := NewWithRand(config.Default(), rand.New(rand.NewSource(1)), time.Now)

	questions := []*question.Question{
		{ID: "q1", Topic: "Functions", Question: "scope", Style: "single_word", Difficulty: "starter"},
		{ID: "q2", Topic: "Functions", Question: "lambda", Style: "single_word", Difficulty: "starter"},
	}

	// With an unreachable floor every question passes untouched.
	result := tr.Batch(questions, 1.0)

	if result.Total != 2 || result.Unchanged != 2 || result.Transformed != 0 {
		t.Errorf("result = %+v, want everything unchanged", result)
	}
	if questions[0].Question != "scope" {
		t.Error("a passing question must not be rewritten")
	}
}

func TestBatchTransformsFailingQuestions(t *testing.T) {
	tr := NewWithRand(config.Default(), rand.New(rand.NewSource(1)), time.Now)

	questions := []*question.Question{
		{ID: "q1", Topic: "Functions", Question: "scope", Style: "single_word", Difficulty: "starter"},
		{ID: "q2", Topic: "Data Types", Question: "Write code to swap x and y.", Style: "short_question", Difficulty: "core"},
	}

	result := tr.Batch(questions, 5.0)

	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
	if result.Transformed+result.Unchanged > result.Total {
		t.Errorf("counters exceed total: %+v", result)
	}
	if result.Transformed != len(result.Improvements) {
		t.Errorf("transformed = %d but %d improvements recorded",
			result.Transformed, len(result.Improvements))
	}
	for _, imp := range result.Improvements {
		if imp <= 0 {
			t.Errorf("recorded improvement %v, want positive", imp)
		}
	}
	for strategy := range result.StrategiesUsed {
		if strategy == StrategyNoChanges {
			t.Error("no_changes_needed should never be tallied as a transformation")
		}
	}

	// Improved entries replace the originals in place.
	if result.Transformed > 0 {
		improvedAny := false
		for _, q := range questions {
			if len(q.RefinementHistory) > 0 {
				improvedAny = true
			}
		}
		if !improvedAny {
			t.Error("transformed questions were not written back into the slice")
		}
	}

	if result.Transformed > 0 && result.AvgImprovement <= 0 {
		t.Errorf("avg improvement = %v, want positive", result.AvgImprovement)
	}
}

func TestBatchSinglePass(t *testing.T) {
	tr := NewWithRand(config.Default(), rand.New(rand.NewSource(1)), time.Now)

	questions := []*question.Question{
		{ID: "q1", Topic: "Functions", Question: "scope", Style: "single_word", Difficulty: "starter"},
	}

	tr.Batch(questions, 5.0)

	// One pass applies at most one strategy per question.
	if len(questions[0].RefinementHistory) > 1 {
		t.Errorf("history length = %d after one pass, want at most 1", len(questions[0].RefinementHistory))
	}
}
