// Package validate checks questions against the flagship quality threshold
// and aggregates pass/fail statistics over a collection.
package validate

import (
	"fmt"
	"math"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/scoring"
)

// gapFloor is the per-criterion score under which a failing report calls out
// the criterion.
const gapFloor = 4.5

// Validator scores questions and decides whether they clear the threshold.
type Validator struct {
	analyzer  *scoring.Analyzer
	threshold float64
}

// New builds a validator using the configured threshold.
func New(cfg *config.Config) *Validator {
	return &Validator{
		analyzer:  scoring.NewAnalyzer(cfg),
		threshold: cfg.Scoring.Threshold,
	}
}

// NewWithThreshold builds a validator with an explicit threshold override.
func NewWithThreshold(cfg *config.Config, threshold float64) *Validator {
	v := New(cfg)
	v.threshold = threshold
	return v
}

// CriterionGap is a criterion scoring below the gap floor on a failing
// question, with its distance to the floor.
type CriterionGap struct {
	Criterion string  `json:"criterion"`
	Score     float64 `json:"score"`
	Gap       float64 `json:"gap"`
}

// Report is the per-question validation outcome.
type Report struct {
	Passes       bool                `json:"passes"`
	OverallScore float64             `json:"overall_score"`
	Threshold    float64             `json:"threshold"`
	Scores       scoring.ScoreVector `json:"scores"`
	Gaps         []CriterionGap      `json:"issues,omitempty"`
	Suggestions  []string            `json:"suggestions,omitempty"`
}

// Validate scores one question. Failing reports list every criterion below
// the gap floor in natural criterion order, plus human suggestions.
func (v *Validator) Validate(q *question.Question) (bool, Report) {
	scores := v.analyzer.Analyze(q)
	passes := scores.Overall >= v.threshold

	report := Report{
		Passes:       passes,
		OverallScore: scores.Overall,
		Threshold:    v.threshold,
		Scores:       scores,
	}

	if !passes {
		for _, c := range scores.Criteria() {
			if c.Score < gapFloor {
				report.Gaps = append(report.Gaps, CriterionGap{
					Criterion: c.Name,
					Score:     c.Score,
					Gap:       math.Round((gapFloor-c.Score)*100) / 100,
				})
			}
		}
		report.Suggestions = v.analyzer.Suggestions(q, scores)
	}

	return passes, report
}

// Distribution buckets overall scores into six half-open quality bands.
type Distribution struct {
	Excellent int `json:"excellent"`  // >= 4.8
	VeryGood  int `json:"very_good"`  // [4.5, 4.8)
	Good      int `json:"good"`       // [4.0, 4.5)
	Adequate  int `json:"adequate"`   // [3.5, 4.0)
	NeedsWork int `json:"needs_work"` // [3.0, 3.5)
	Poor      int `json:"poor"`       // < 3.0
}

// add places one score in its bucket. Every score lands in exactly one
// bucket, so the counts always sum to the collection size.
func (d *Distribution) add(score float64) {
	switch {
	case score >= 4.8:
		d.Excellent++
	case score >= 4.5:
		d.VeryGood++
	case score >= 4.0:
		d.Good++
	case score >= 3.5:
		d.Adequate++
	case score >= 3.0:
		d.NeedsWork++
	default:
		d.Poor++
	}
}

// FailedQuestion is the digest of a failing record in a batch summary.
type FailedQuestion struct {
	ID       string        `json:"id"`
	Question string        `json:"question"`
	Score    float64       `json:"score"`
	TopGap   *CriterionGap `json:"top_issue,omitempty"`
}

// Summary aggregates a batch validation run.
type Summary struct {
	Total           int              `json:"total"`
	Passed          int              `json:"passed"`
	Failed          int              `json:"failed"`
	AverageScore    float64          `json:"average_score"`
	Threshold       float64          `json:"threshold"`
	Distribution    Distribution     `json:"distribution"`
	FailedQuestions []FailedQuestion `json:"failed_questions,omitempty"`
}

// ValidateBatch validates a collection. An empty collection is an error; the
// summary's mean would otherwise divide by zero.
func (v *Validator) ValidateBatch(questions []*question.Question) (Summary, error) {
	if len(questions) == 0 {
		return Summary{}, fmt.Errorf("cannot validate an empty question collection")
	}

	summary := Summary{
		Total:     len(questions),
		Threshold: v.threshold,
	}

	var totalScore float64
	for _, q := range questions {
		passes, report := v.Validate(q)
		totalScore += report.OverallScore
		summary.Distribution.add(report.OverallScore)

		if passes {
			summary.Passed++
			continue
		}

		summary.Failed++
		var topGap *CriterionGap
		if len(report.Gaps) > 0 {
			topGap = &report.Gaps[0]
		}
		summary.FailedQuestions = append(summary.FailedQuestions, FailedQuestion{
			ID:       q.ID,
			Question: truncate(q.Question, 50),
			Score:    report.OverallScore,
			TopGap:   topGap,
		})
	}

	summary.AverageScore = math.Round(totalScore/float64(len(questions))*100) / 100
	return summary, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
