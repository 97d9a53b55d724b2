package scoring

import "math"

// ScoreVector holds the seven criterion scores plus the weighted overall.
// Every criterion lies in [1.0, 5.0]; Overall is the configured weighted sum
// rounded to two decimals.
type ScoreVector struct {
	AdultLearning     float64 `json:"adult_learning"`
	PeopleFirst       float64 `json:"people_first"`
	Blooms            float64 `json:"blooms"`
	Practical         float64 `json:"practical"`
	RAG               float64 `json:"rag"`
	ConstructValidity float64 `json:"construct_validity"`
	CognitiveDepth    float64 `json:"cognitive_depth"`
	Overall           float64 `json:"overall"`
}

// Criterion pairs a criterion name with its score.
type Criterion struct {
	Name  string
	Score float64
}

// Criteria returns the seven criterion scores in natural report order.
func (v ScoreVector) Criteria() []Criterion {
	return []Criterion{
		{"adult_learning", v.AdultLearning},
		{"people_first", v.PeopleFirst},
		{"blooms", v.Blooms},
		{"practical", v.Practical},
		{"rag", v.RAG},
		{"construct_validity", v.ConstructValidity},
		{"cognitive_depth", v.CognitiveDepth},
	}
}

// ToMap returns the vector as a name-to-score map including overall, the
// shape stored on Question.QualityScores.
func (v ScoreVector) ToMap() map[string]float64 {
	m := make(map[string]float64, 8)
	for _, c := range v.Criteria() {
		m[c.Name] = c.Score
	}
	m["overall"] = v.Overall
	return m
}

// clamp bounds a criterion score to [1.0, 5.0].
func clamp(score float64) float64 {
	return math.Max(1.0, math.Min(5.0, score))
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
