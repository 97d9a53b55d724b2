// Package transform implements the rewrite strategies that raise a
// question's quality score, driven by the issue detector's top finding.
package transform

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/scoring"
)

// Strategy names recorded in refinement history.
const (
	StrategyNoChanges        = "no_changes_needed"
	StrategyExpandSingleWord = "expand_single_word"
	StrategyReplaceAbstract  = "replace_abstract_variables"
	StrategyRealWorldContext = "add_real_world_context"
	StrategyDiversifyNames   = "diversify_names"
	StrategyFixBlooms        = "fix_blooms_alignment"
	StrategyNoBloomFix       = "no_bloom_fix_needed"
	StrategyEnhanceKeywords  = "enhance_keywords"
	StrategyPracticalContext = "add_practical_context"
	StrategyGeneric          = "generic_enhancement"
)

// Transformer rewrites questions one strategy at a time. The random source
// and clock are injectable so tests can pin nondeterministic choices.
type Transformer struct {
	cfg      *config.Config
	analyzer *scoring.Analyzer
	rng      *rand.Rand
	now      func() time.Time
}

// New builds a transformer with a time-seeded random source.
func New(cfg *config.Config) *Transformer {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithRand builds a transformer with an explicit random source and clock.
func NewWithRand(cfg *config.Config, rng *rand.Rand, now func() time.Time) *Transformer {
	return &Transformer{
		cfg:      cfg,
		analyzer: scoring.NewAnalyzer(cfg),
		rng:      rng,
		now:      now,
	}
}

// Analyzer exposes the transformer's analyzer so callers can score with the
// same configuration.
func (t *Transformer) Analyzer() *scoring.Analyzer {
	return t.analyzer
}

// Transform applies the single best-matching rewrite strategy to a deep copy
// of q and reports the overall score delta. When no issues are detected the
// input is returned untouched.
func (t *Transformer) Transform(q *question.Question) (*question.Question, string, float64) {
	before := t.analyzer.Analyze(q)

	issues := t.analyzer.DetectIssues(q, before)
	if len(issues) == 0 {
		return q, StrategyNoChanges, 0.0
	}

	work := q.Clone()
	oldText := work.Question

	var strategy string
	switch issues[0].Code {
	case scoring.CodeSingleWord:
		strategy = t.expandSingleWord(work)
	case scoring.CodeAbstractVars:
		strategy = t.replaceAbstractVariables(work)
	case scoring.CodeNoRealWorld:
		strategy = t.addRealWorldContext(work)
	case scoring.CodeWesternNames:
		strategy = t.diversifyNames(work)
	case scoring.CodeMissingBloom, scoring.CodeBloomMismatch:
		strategy = t.fixBloomsAlignment(work)
	case scoring.CodeFewKeywords:
		strategy = t.enhanceKeywords(work)
	case scoring.CodeNoToolContext:
		strategy = t.addPracticalContext(work)
	default:
		strategy = t.genericEnhancement(work)
	}

	after := t.analyzer.Analyze(work)
	improvement := math.Round((after.Overall-before.Overall)*100) / 100

	work.ApplyRefinement(oldText, work.Question, strategy, improvement, t.now())
	work.QualityScores = after.ToMap()

	return work, strategy, improvement
}

// expandSingleWord replaces a bare term with a full question from the
// expansion table, or a generic wrapper when the term is unknown, and
// promotes the style to short_question.
func (t *Transformer) expandSingleWord(q *question.Question) string {
	word := strings.ToLower(strings.TrimSpace(q.Question))

	if expansion, ok := t.cfg.Templates.Expansions[word]; ok {
		q.Question = expansion
	} else {
		q.Question = fmt.Sprintf("What is the purpose or meaning of '%s'?", strings.TrimSpace(q.Question))
	}

	q.Style = "short_question"
	return StrategyExpandSingleWord
}

// replaceAbstractVariables swaps placeholder identifiers for realistic names,
// picking a theme from the question's wording. Both the question text and the
// code context are rewritten.
func (t *Transformer) replaceAbstractVariables(q *question.Question) string {
	replacements := t.cfg.Templates.VariableDefaults

	lower := strings.ToLower(q.Question)
	for _, theme := range t.cfg.Templates.VariableThemes {
		if strings.Contains(lower, theme.Trigger) {
			replacements = theme.Replacements
			break
		}
	}

	for _, old := range sortedKeys(replacements) {
		re := wordPattern(old)
		q.Question = re.ReplaceAllString(q.Question, replacements[old])
		if q.CodeContext != "" {
			q.CodeContext = re.ReplaceAllString(q.CodeContext, replacements[old])
		}
	}

	return StrategyReplaceAbstract
}

// addRealWorldContext grounds an abstract question in a concrete scenario
// chosen from the configured context pool for the question's topic.
func (t *Transformer) addRealWorldContext(q *question.Question) string {
	category, ok := t.cfg.Templates.TopicContexts[q.Topic]
	if !ok {
		category = "general"
	}
	contexts := t.cfg.Templates.RealWorldContexts[category]
	if len(contexts) == 0 {
		contexts = t.cfg.Templates.RealWorldContexts["general"]
	}

	lower := strings.ToLower(q.Question)
	switch {
	case strings.Contains(lower, "list of numbers"):
		q.Question = strings.Replace(q.Question,
			"list of numbers",
			"list of customer order values: [342, 501, 289, 612, 445]", 1)

	case strings.Contains(lower, "variable") && !strings.Contains(lower, "swap"):
		q.Question = "You're building a user registration form. " + q.Question

	case q.Style == "scenario_task" &&
		!strings.Contains(lower, "you're") &&
		!strings.Contains(lower, "you need") &&
		!strings.Contains(lower, "build"):
		if len(contexts) > 0 {
			context := contexts[t.rng.Intn(len(contexts))]
			q.Question = "You're " + context + ". " + q.Question
		}
	}

	return StrategyRealWorldContext
}

// diversifyNames replaces each stereotypical Western name with a random pick
// from its configured replacement pool, in question text and code context.
func (t *Transformer) diversifyNames(q *question.Question) string {
	for _, old := range sortedKeys(t.cfg.Templates.NameReplacements) {
		pool := t.cfg.Templates.NameReplacements[old]
		if len(pool) == 0 {
			continue
		}
		replacement := pool[t.rng.Intn(len(pool))]

		re := wordPattern(old)
		q.Question = re.ReplaceAllString(q.Question, replacement)
		if q.CodeContext != "" {
			q.CodeContext = re.ReplaceAllString(q.CodeContext, replacement)
		}
	}

	return StrategyDiversifyNames
}

// fixBloomsAlignment overwrites the bloom level with the one expected for the
// question's difficulty, preferring the default for its style.
func (t *Transformer) fixBloomsAlignment(q *question.Question) string {
	expected := t.cfg.Blooms[strings.ToLower(q.Difficulty)]
	if len(expected) == 0 {
		return StrategyNoBloomFix
	}

	suggested, ok := t.cfg.Templates.StyleBloomDefaults[q.Style]
	if !ok || !containsString(expected, suggested) {
		suggested = expected[0]
	}

	q.BloomLevel = suggested
	return StrategyFixBlooms
}

// enhanceKeywords unions into the keyword set any curated language or topic
// terms that already appear as whole words in the question text, capped at the
// configured maximum. The set is stored sorted.
func (t *Transformer) enhanceKeywords(q *question.Question) string {
	existing := map[string]bool{}
	for _, kw := range q.Keywords {
		existing[kw] = true
	}

	text := strings.ToLower(q.Question)
	for _, term := range t.cfg.Templates.LanguageTerms {
		if wordPattern(term).MatchString(text) {
			existing[term] = true
		}
	}
	for _, kw := range t.cfg.Templates.TopicKeywords[q.Topic] {
		if wordPattern(strings.ToLower(kw)).MatchString(text) {
			existing[kw] = true
		}
	}

	keywords := make([]string, 0, len(existing))
	for kw := range existing {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	if max := t.cfg.RAG.MaxKeywords; max > 0 && len(keywords) > max {
		keywords = capKeywords(keywords, text, max)
	}
	q.Keywords = keywords

	return StrategyEnhanceKeywords
}

// capKeywords trims an oversized keyword set to max entries. Terms that appear
// in the question text are kept ahead of ones that do not, since they are the
// retrieval anchors.
func capKeywords(keywords []string, text string, max int) []string {
	var inText, rest []string
	for _, kw := range keywords {
		if wordPattern(strings.ToLower(kw)).MatchString(text) {
			inText = append(inText, kw)
		} else {
			rest = append(rest, kw)
		}
	}

	kept := inText
	if len(kept) > max {
		kept = kept[:max]
	} else if missing := max - len(kept); missing > 0 {
		if missing > len(rest) {
			missing = len(rest)
		}
		kept = append(kept, rest[:missing]...)
	}

	sort.Strings(kept)
	return kept
}

// addPracticalContext appends one tool-awareness hint to stretch questions
// whose text mentions a trigger word. The first matching hint wins and is
// never appended twice.
func (t *Transformer) addPracticalContext(q *question.Question) string {
	if q.Difficulty == "stretch" {
		lower := strings.ToLower(q.Question)
		for _, hint := range t.cfg.Templates.ToolHints {
			if strings.Contains(lower, hint.Trigger) && !strings.Contains(q.Question, hint.Hint) {
				q.Question += hint.Hint
				break
			}
		}
	}

	return StrategyPracticalContext
}

// genericEnhancement ensures terminal punctuation and a capitalized first
// letter. Applying it to an already well-formed question is a no-op.
func (t *Transformer) genericEnhancement(q *question.Question) string {
	trimmed := strings.TrimSpace(q.Question)
	if !strings.HasSuffix(trimmed, "?") && !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, ":") {
		if !strings.Contains(q.Question, "?") {
			q.Question = trimmed + "?"
		}
	}

	runes := []rune(q.Question)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
		q.Question = string(runes)
	}

	return StrategyGeneric
}

// wordPattern compiles a case-insensitive word-boundary pattern for a single
// token.
func wordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
