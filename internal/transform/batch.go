package transform

import (
	"github.com/dotcommander/qforge/internal/question"
)

// BatchResult summarizes a single refinement pass over a collection.
type BatchResult struct {
	Total          int            `json:"total"`
	Transformed    int            `json:"transformed"`
	Unchanged      int            `json:"unchanged"`
	Improvements   []float64      `json:"improvements,omitempty"`
	StrategiesUsed map[string]int `json:"strategies_used"`
	AvgImprovement float64        `json:"avg_improvement"`
}

// Batch applies at most one transformation to each question scoring below
// the threshold, replacing improved entries in place. Records already at or
// above the threshold are skipped. This is a single pass: a record is never
// run through a second strategy even if issues remain.
func (t *Transformer) Batch(questions []*question.Question, threshold float64) BatchResult {
	result := BatchResult{
		Total:          len(questions),
		StrategiesUsed: map[string]int{},
	}

	for i, q := range questions {
		if t.analyzer.Analyze(q).Overall >= threshold {
			result.Unchanged++
			continue
		}

		transformed, strategy, improvement := t.Transform(q)
		if improvement > 0 {
			result.Transformed++
			result.Improvements = append(result.Improvements, improvement)
			result.StrategiesUsed[strategy]++
			questions[i] = transformed
		}
	}

	if len(result.Improvements) > 0 {
		var sum float64
		for _, imp := range result.Improvements {
			sum += imp
		}
		result.AvgImprovement = sum / float64(len(result.Improvements))
	}

	return result
}
