// Package question provides the Question record, its JSONL interchange
// format, and the normalization rules applied on parse.
package question

import (
	"maps"
	"slices"
	"time"
)

// Valid enum values. Unknown values are warned about on parse but scored
// literally; they are never rewritten.
var (
	ValidStyles = map[string]bool{
		"single_word": true, "short_question": true, "predict_output": true,
		"debug_fix": true, "scenario_task": true, "fill_in_blank": true,
		"explain_concept": true, "compare_contrast": true, "rewrite": true,
	}
	ValidDifficulties = map[string]bool{
		"starter": true, "core": true, "stretch": true,
	}
	ValidBloomLevels = map[string]bool{
		"remember": true, "understand": true, "apply": true,
		"analyze": true, "evaluate": true, "create": true,
	}
)

// Refinement is one entry in a question's refinement history. Entries are
// append-only: once recorded they are never edited or removed.
type Refinement struct {
	Timestamp        string  `json:"timestamp"`
	Strategy         string  `json:"strategy"`
	OldQuestion      string  `json:"old_question"`
	NewQuestion      string  `json:"new_question"`
	ScoreImprovement float64 `json:"score_improvement"`
}

// Question is the sole domain entity: a single educational question with its
// taxonomy metadata and refinement history.
type Question struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Question   string `json:"question"`
	Style      string `json:"style"`
	Difficulty string `json:"difficulty"`

	Subtopics       []string       `json:"subtopics,omitempty"`
	Keywords        []string       `json:"keywords,omitempty"`
	Prerequisites   []string       `json:"prerequisites,omitempty"`
	BloomLevel      string         `json:"bloom_level,omitempty"`
	AnswerType      string         `json:"answer_type,omitempty"`
	ExpectedTimeSec int            `json:"expected_time_sec,omitempty"`
	DuplicatesCheck string         `json:"duplicates_check,omitempty"`
	Language        string         `json:"language,omitempty"`
	CodeContext     string         `json:"code_context,omitempty"`
	Constraints     map[string]any `json:"constraints,omitempty"`

	// Refinement metadata, mutated only through ApplyRefinement.
	OriginalQuestion  string             `json:"original_question,omitempty"`
	RefinementHistory []Refinement       `json:"refinement_history,omitempty"`
	QualityScores     map[string]float64 `json:"quality_scores,omitempty"`
	LastRefined       string             `json:"last_refined,omitempty"`
}

// Clone returns a deep copy. The transformer always works on a clone so the
// caller's record is never aliased during mutation.
func (q *Question) Clone() *Question {
	c := *q
	c.Subtopics = slices.Clone(q.Subtopics)
	c.Keywords = slices.Clone(q.Keywords)
	c.Prerequisites = slices.Clone(q.Prerequisites)
	c.RefinementHistory = slices.Clone(q.RefinementHistory)
	if q.Constraints != nil {
		c.Constraints = maps.Clone(q.Constraints)
	}
	if q.QualityScores != nil {
		c.QualityScores = maps.Clone(q.QualityScores)
	}
	return &c
}

// ApplyRefinement records a completed rewrite: it preserves the first-ever
// question text in OriginalQuestion, appends exactly one history entry, swaps
// in the new text, and bumps LastRefined.
func (q *Question) ApplyRefinement(oldText, newText, strategy string, improvement float64, now time.Time) {
	if q.OriginalQuestion == "" {
		q.OriginalQuestion = oldText
	}

	ts := now.Format(time.RFC3339)
	q.RefinementHistory = append(q.RefinementHistory, Refinement{
		Timestamp:        ts,
		Strategy:         strategy,
		OldQuestion:      oldText,
		NewQuestion:      newText,
		ScoreImprovement: improvement,
	})

	q.Question = newText
	q.LastRefined = ts
}

// WordCount returns the number of whitespace-separated words in the question
// text.
func (q *Question) WordCount() int {
	return len(splitWords(q.Question))
}
