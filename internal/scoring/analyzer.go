// Package scoring implements the quality analyzer: a deterministic mapping
// from a question record to a seven-criterion score vector, and the issue
// detector that turns a record plus its scores into prioritized findings.
package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/question"
)

// Analyzer scores questions against the configured quality criteria. It is
// stateless across calls; Analyze is pure and safe for concurrent use as long
// as the configuration is not mutated after construction.
type Analyzer struct {
	cfg          *config.Config
	abstractRe   *regexp.Regexp
	codeAssignRe *regexp.Regexp
}

// NewAnalyzer builds an analyzer bound to an immutable configuration.
func NewAnalyzer(cfg *config.Config) *Analyzer {
	return &Analyzer{
		cfg:          cfg,
		abstractRe:   compileTokenPattern(cfg.WordLists.AbstractVars),
		codeAssignRe: compileAssignPattern(cfg.WordLists.AbstractVars),
	}
}

// compileTokenPattern builds a word-boundary alternation over the configured
// placeholder tokens, matched case-insensitively. An empty token list yields a
// pattern that never matches; an empty alternation would match at every word
// boundary instead.
func compileTokenPattern(tokens []string) *regexp.Regexp {
	var quoted []string
	for _, t := range tokens {
		if t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	if len(quoted) == 0 {
		return regexp.MustCompile(`\b\B`)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// compileAssignPattern matches assignments to single-letter placeholders in
// code context, e.g. "x = 5".
func compileAssignPattern(tokens []string) *regexp.Regexp {
	var letters []string
	for _, t := range tokens {
		if len(t) == 1 {
			letters = append(letters, regexp.QuoteMeta(t))
		}
	}
	if len(letters) == 0 {
		letters = []string{"x", "y"}
	}
	return regexp.MustCompile(`\b(` + strings.Join(letters, "|") + `)\s*=`)
}

// Analyze computes the seven criterion scores and the weighted overall.
func (a *Analyzer) Analyze(q *question.Question) ScoreVector {
	v := ScoreVector{
		AdultLearning:     a.scoreAdultLearning(q),
		PeopleFirst:       a.scorePeopleFirst(q),
		Blooms:            a.scoreBlooms(q),
		Practical:         a.scorePractical(q),
		RAG:               a.scoreRAG(q),
		ConstructValidity: a.scoreConstructValidity(q),
		CognitiveDepth:    a.scoreCognitiveDepth(q),
	}

	w := a.cfg.Scoring.Weights
	overall := v.AdultLearning*w["adult_learning"] +
		v.PeopleFirst*w["people_first"] +
		v.Blooms*w["blooms"] +
		v.Practical*w["practical"] +
		v.RAG*w["rag"] +
		v.ConstructValidity*w["construct_validity"] +
		v.CognitiveDepth*w["cognitive_depth"]
	v.Overall = round2(overall)

	return v
}

// Threshold returns the configured pass threshold.
func (a *Analyzer) Threshold() float64 {
	return a.cfg.Scoring.Threshold
}

// scoreAdultLearning rewards real-world framing and realistic identifiers,
// and penalizes abstract placeholders.
func (a *Analyzer) scoreAdultLearning(q *question.Question) float64 {
	score := 3.0
	text := strings.ToLower(q.Question)

	if containsAny(text, a.cfg.WordLists.RealWorld) {
		score += 0.8
	}
	if q.Style == "scenario_task" {
		score += 0.5
	}
	if strings.Contains(text, "you need") || strings.Contains(text, "you're") || strings.Contains(text, "you have") {
		score += 0.4
	}

	// Each distinct placeholder token costs 0.5.
	if found := a.distinctAbstractVars(text); len(found) > 0 {
		score -= 0.5 * float64(len(found))
	}

	practicalVars := a.allRealisticVars()
	if containsAny(text, practicalVars) {
		score += 0.6
	}

	if q.CodeContext != "" {
		codeLower := strings.ToLower(q.CodeContext)
		if containsAny(codeLower, practicalVars) {
			score += 0.4
		}
		if a.codeAssignRe.MatchString(codeLower) {
			score -= 0.3
		}
	}

	return clamp(score)
}

// scorePeopleFirst rewards inclusive, growth-minded phrasing matched to the
// declared difficulty.
func (a *Analyzer) scorePeopleFirst(q *question.Question) float64 {
	score := 3.5
	textAll := strings.ToLower(q.Question + " " + q.CodeContext + " " + strings.Join(q.Keywords, " "))

	diverseFound := false
	for _, name := range a.cfg.Templates.DiverseNames {
		if strings.Contains(textAll, strings.ToLower(name)) {
			diverseFound = true
			break
		}
	}
	if diverseFound {
		score += 0.7
	}

	if containsAny(textAll, a.cfg.Templates.WesternNames) && !diverseFound {
		score -= 0.4
	}

	if containsAny(textAll, a.cfg.WordLists.Gendered) {
		score -= 0.5
	}

	wc := q.WordCount()
	switch q.Difficulty {
	case "starter":
		if wc > 50 {
			score -= 0.4
		}
	case "stretch":
		if wc < 10 {
			score -= 0.3
		}
	}

	if containsAny(textAll, a.cfg.WordLists.Positive) {
		score += 0.3
	}
	if containsAny(textAll, a.cfg.WordLists.Condescending) {
		score -= 0.6
	}

	// Jargon with no parenthetical gloss in the question text.
	if containsAny(textAll, a.cfg.WordLists.Jargon) && !strings.Contains(q.Question, "(") {
		score -= 0.4
	}

	return clamp(score)
}

// scoreBlooms compares the declared bloom level against the expectations for
// the declared difficulty, then for the declared style. A missing level is a
// flat 3.0.
func (a *Analyzer) scoreBlooms(q *question.Question) float64 {
	if q.BloomLevel == "" {
		return 3.0
	}

	bloom := strings.ToLower(q.BloomLevel)
	expected := a.cfg.Blooms[strings.ToLower(q.Difficulty)]

	score := 3.0
	if containsFold(expected, bloom) {
		score = 5.0
	}

	if !containsFold(a.cfg.StyleBlooms[strings.ToLower(q.Style)], bloom) {
		score -= 0.5
	}

	return clamp(score)
}

// scorePractical rewards industry, tooling, job, and workflow vocabulary.
func (a *Analyzer) scorePractical(q *question.Question) float64 {
	score := 3.0
	textAll := strings.ToLower(q.Question + " " + q.CodeContext + " " + strings.Join(q.Keywords, " "))

	if containsAny(textAll, a.cfg.WordLists.Industry) {
		score += 0.7
	}
	if containsAny(textAll, a.cfg.WordLists.Tools) {
		score += 0.8
	}
	if containsAny(textAll, a.cfg.WordLists.Job) {
		score += 0.5
	}
	if containsAny(textAll, a.cfg.WordLists.Workflow) {
		score += 0.6
	}

	if a.cfg.WordLists.CurrentVersion != "" && strings.Contains(textAll, a.cfg.WordLists.CurrentVersion) {
		score += 0.3
	}
	if a.cfg.WordLists.DeprecatedVersion != "" && strings.Contains(textAll, a.cfg.WordLists.DeprecatedVersion) {
		score -= 1.0
	}

	return clamp(score)
}

// scoreRAG measures keyword and semantic search friendliness.
func (a *Analyzer) scoreRAG(q *question.Question) float64 {
	score := 3.0

	switch kw := len(q.Keywords); {
	case kw >= 7:
		score += 1.0
	case kw >= 5:
		score += 0.7
	case kw >= 3:
		score += 0.4
	default:
		score -= 0.5
	}

	if len(q.Keywords) > 0 {
		unique := map[string]bool{}
		for _, kw := range q.Keywords {
			for _, w := range strings.Fields(strings.ToLower(kw)) {
				unique[w] = true
			}
		}
		if len(unique) >= 10 {
			score += 0.5
		}
	}

	if q.Style == "single_word" {
		if q.WordCount() == 1 {
			score -= 1.5
		}
	} else {
		switch length := len(q.Question); {
		case length >= 50:
			score += 0.6
		case length < 20:
			score -= 0.4
		}
	}

	lower := strings.ToLower(q.Question)
	for _, starter := range a.cfg.WordLists.Starters {
		if strings.HasPrefix(lower, starter) {
			score += 0.5
			break
		}
	}

	if len(q.Prerequisites) > 0 {
		score += 0.4
	}
	if len(q.Subtopics) > 1 {
		score += 0.3
	}
	if len(q.DuplicatesCheck) > 20 {
		score += 0.3
	}

	return clamp(score)
}

// scoreConstructValidity estimates whether the question measures the skill it
// claims to measure.
func (a *Analyzer) scoreConstructValidity(q *question.Question) float64 {
	score := 3.5

	if q.Style != "" && q.BloomLevel != "" {
		expected := a.cfg.ConstructValidity.StyleBloomMap[q.Style]
		if containsFold(expected, strings.ToLower(q.BloomLevel)) {
			score += 1.0
		} else {
			score -= 0.8
		}
	}

	if q.Style == "single_word" {
		switch wc := q.WordCount(); {
		case wc == 1:
			score -= 1.5
		case wc < 5:
			score -= 0.5
		}
	}

	textLower := strings.ToLower(q.Question)
	if countContained(textLower, a.cfg.WordLists.Ambiguous) > 2 {
		score -= 0.6
	}
	if containsAny(textLower, a.cfg.WordLists.AssessmentVerbs) {
		score += 0.5
	}
	if containsAny(textLower, a.cfg.WordLists.TrickPatterns) {
		score -= 0.4
	}
	if len(q.CodeContext) > 50 {
		score += 0.4
	}

	return clamp(score)
}

// scoreCognitiveDepth scores against the six facets of understanding. Facet
// weights sum into a depth total bucketed into fixed tiers; the tier bands
// are part of the configured heuristic and are kept as-is.
func (a *Analyzer) scoreCognitiveDepth(q *question.Question) float64 {
	textAll := strings.ToLower(q.Question + " " + q.CodeContext)

	detected := a.facetWeight(textAll)

	var score float64
	switch {
	case detected >= 3.0:
		score = 5.0
	case detected >= 2.0:
		score = 4.0
	case detected >= 1.0:
		score = 3.0
	case detected >= 0.5:
		score = 2.5
	default:
		score = 2.0
	}

	// Recall verbs with no facets at all read as rote memorization.
	if detected == 0 && containsAny(textAll, a.cfg.WordLists.Recall) {
		score = 1.5
	}

	if q.BloomLevel != "" {
		switch strings.ToLower(q.BloomLevel) {
		case "create", "evaluate":
			if detected < 2.0 {
				score -= 0.5
			}
		case "analyze", "apply":
			if detected < 1.0 {
				score -= 0.3
			}
		}
	}

	if q.Style == "scenario_task" && detected >= 2.0 {
		score += 0.3
	}

	return clamp(score)
}

// facetWeight sums the weights of facets with at least one matching trigger
// phrase.
func (a *Analyzer) facetWeight(text string) float64 {
	var total float64
	for _, facet := range a.cfg.CognitiveDepth.SixFacets {
		if containsAny(text, facet.Patterns) {
			total += facet.Weight
		}
	}
	return total
}

// distinctAbstractVars returns the distinct placeholder tokens found in text,
// lowercased, in first-appearance order.
func (a *Analyzer) distinctAbstractVars(text string) []string {
	var found []string
	seen := map[string]bool{}
	for _, m := range a.abstractRe.FindAllString(text, -1) {
		m = strings.ToLower(m)
		if !seen[m] {
			seen[m] = true
			found = append(found, m)
		}
	}
	return found
}

// allRealisticVars flattens the configured realistic variable categories.
func (a *Analyzer) allRealisticVars() []string {
	var vars []string
	for _, name := range sortedKeys(a.cfg.Templates.RealisticVariables) {
		vars = append(vars, a.cfg.Templates.RealisticVariables[name]...)
	}
	return vars
}

// containsAny reports whether text contains any of the terms as a substring.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// countContained counts how many of the terms appear in text at least once.
func countContained(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// containsFold reports whether list contains s, case-insensitively.
func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// sortedKeys returns map keys in sorted order for deterministic iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
