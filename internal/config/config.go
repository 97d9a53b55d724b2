// Package config defines the qforge configuration: criterion weights, word
// lists, taxonomy maps, and rewrite templates. A Config is built once at
// startup and passed by pointer into each component; it is never mutated
// after load, which makes it safe to share across goroutines.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// CriterionNames lists the seven scoring criteria in natural report order.
var CriterionNames = []string{
	"adult_learning",
	"people_first",
	"blooms",
	"practical",
	"rag",
	"construct_validity",
	"cognitive_depth",
}

// Config represents the full qforge configuration.
type Config struct {
	Scoring           ScoringConfig           `yaml:"scoring"`
	Blooms            map[string][]string     `yaml:"blooms"`
	StyleBlooms       map[string][]string     `yaml:"style_blooms"`
	ConstructValidity ConstructValidityConfig `yaml:"construct_validity"`
	CognitiveDepth    CognitiveDepthConfig    `yaml:"cognitive_depth"`
	Templates         TemplatesConfig         `yaml:"templates"`
	RAG               RAGConfig               `yaml:"rag"`
	WordLists         WordListsConfig         `yaml:"wordlists"`
}

// ScoringConfig holds the weight table and pass threshold.
type ScoringConfig struct {
	Weights   map[string]float64 `yaml:"weights"`
	Threshold float64            `yaml:"threshold"`
}

// ConstructValidityConfig holds the style-to-bloom map used by the
// construct_validity criterion. It is deliberately independent from
// StyleBlooms so the two criteria can be tuned separately.
type ConstructValidityConfig struct {
	StyleBloomMap map[string][]string `yaml:"style_bloom_map"`
}

// Facet is one of the six facets of understanding: a set of trigger phrases
// and the weight it contributes to the depth score when any phrase matches.
type Facet struct {
	Patterns []string `yaml:"patterns"`
	Weight   float64  `yaml:"weight"`
}

// CognitiveDepthConfig holds the six-facets definition.
type CognitiveDepthConfig struct {
	SixFacets map[string]Facet `yaml:"six_facets"`
}

// TemplatesConfig holds the rewrite material used by the transformer.
type TemplatesConfig struct {
	DiverseNames       []string            `yaml:"diverse_names"`
	WesternNames       []string            `yaml:"western_names"`
	NameReplacements   map[string][]string `yaml:"name_replacements"`
	RealisticVariables map[string][]string `yaml:"realistic_variables"`
	RealWorldContexts  map[string][]string `yaml:"real_world_contexts"`
	TopicContexts      map[string]string   `yaml:"topic_contexts"`
	Expansions         map[string]string   `yaml:"expansions"`
	TopicKeywords      map[string][]string `yaml:"topic_keywords"`
	LanguageTerms      []string            `yaml:"language_terms"`
	ToolHints          []ToolHint          `yaml:"tool_hints"`
	VariableThemes     []VariableTheme     `yaml:"variable_themes"`
	VariableDefaults   map[string]string   `yaml:"variable_defaults"`
	StyleBloomDefaults map[string]string   `yaml:"style_bloom_defaults"`
}

// ToolHint appends a parenthetical tooling note when its trigger word appears
// in a stretch-difficulty question. Order matters: the first match wins.
type ToolHint struct {
	Trigger string `yaml:"trigger"`
	Hint    string `yaml:"hint"`
}

// VariableTheme maps placeholder identifiers to realistic names when the
// question text contains the trigger word. First matching theme wins.
type VariableTheme struct {
	Trigger      string            `yaml:"trigger"`
	Replacements map[string]string `yaml:"replacements"`
}

// RAGConfig bounds the keyword set size.
type RAGConfig struct {
	MinKeywords int `yaml:"min_keywords"`
	MaxKeywords int `yaml:"max_keywords"`
}

// WordListsConfig holds the vocabulary lists the analyzer matches against.
// Matching is plain lowercase substring containment unless noted.
type WordListsConfig struct {
	RealWorld         []string `yaml:"real_world"`
	Positive          []string `yaml:"positive"`
	Condescending     []string `yaml:"condescending"`
	Gendered          []string `yaml:"gendered"`
	Jargon            []string `yaml:"jargon"`
	Industry          []string `yaml:"industry"`
	Tools             []string `yaml:"tools"`
	Job               []string `yaml:"job"`
	Workflow          []string `yaml:"workflow"`
	Starters          []string `yaml:"starters"`
	Ambiguous         []string `yaml:"ambiguous"`
	AssessmentVerbs   []string `yaml:"assessment_verbs"`
	TrickPatterns     []string `yaml:"trick_patterns"`
	Recall            []string `yaml:"recall"`
	AbstractVars      []string `yaml:"abstract_vars"` // matched on word boundaries
	CurrentVersion    string   `yaml:"current_version"`
	DeprecatedVersion string   `yaml:"deprecated_version"`
}

// Load reads a YAML config file and validates it. An empty path returns the
// built-in defaults. A file that is present but missing or mis-summing the
// weight table is a hard error: silently defaulting weights would change
// scoring semantics without anyone noticing.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	fillTemplates(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillTemplates backfills template and word-list fields absent from a user
// config with the built-in defaults. Backfill is per-field: a config that sets
// one word list must not silently blank the others, since an empty list
// changes scoring semantics. The weight table is deliberately not backfilled;
// Validate rejects an incomplete one.
func fillTemplates(cfg *Config) {
	def := Default()
	if cfg.Blooms == nil {
		cfg.Blooms = def.Blooms
	}
	if cfg.StyleBlooms == nil {
		cfg.StyleBlooms = def.StyleBlooms
	}
	if cfg.ConstructValidity.StyleBloomMap == nil {
		cfg.ConstructValidity = def.ConstructValidity
	}
	if cfg.CognitiveDepth.SixFacets == nil {
		cfg.CognitiveDepth = def.CognitiveDepth
	}
	fillTemplateFields(&cfg.Templates, def.Templates)
	if cfg.RAG.MaxKeywords == 0 {
		cfg.RAG = def.RAG
	}
	fillWordListFields(&cfg.WordLists, def.WordLists)
	if cfg.Scoring.Threshold == 0 {
		cfg.Scoring.Threshold = def.Scoring.Threshold
	}
}

func fillTemplateFields(t *TemplatesConfig, def TemplatesConfig) {
	if t.DiverseNames == nil {
		t.DiverseNames = def.DiverseNames
	}
	if t.WesternNames == nil {
		t.WesternNames = def.WesternNames
	}
	if t.NameReplacements == nil {
		t.NameReplacements = def.NameReplacements
	}
	if t.RealisticVariables == nil {
		t.RealisticVariables = def.RealisticVariables
	}
	if t.RealWorldContexts == nil {
		t.RealWorldContexts = def.RealWorldContexts
	}
	if t.TopicContexts == nil {
		t.TopicContexts = def.TopicContexts
	}
	if t.Expansions == nil {
		t.Expansions = def.Expansions
	}
	if t.TopicKeywords == nil {
		t.TopicKeywords = def.TopicKeywords
	}
	if t.LanguageTerms == nil {
		t.LanguageTerms = def.LanguageTerms
	}
	if t.ToolHints == nil {
		t.ToolHints = def.ToolHints
	}
	if t.VariableThemes == nil {
		t.VariableThemes = def.VariableThemes
	}
	if t.VariableDefaults == nil {
		t.VariableDefaults = def.VariableDefaults
	}
	if t.StyleBloomDefaults == nil {
		t.StyleBloomDefaults = def.StyleBloomDefaults
	}
}

func fillWordListFields(w *WordListsConfig, def WordListsConfig) {
	if w.RealWorld == nil {
		w.RealWorld = def.RealWorld
	}
	if w.Positive == nil {
		w.Positive = def.Positive
	}
	if w.Condescending == nil {
		w.Condescending = def.Condescending
	}
	if w.Gendered == nil {
		w.Gendered = def.Gendered
	}
	if w.Jargon == nil {
		w.Jargon = def.Jargon
	}
	if w.Industry == nil {
		w.Industry = def.Industry
	}
	if w.Tools == nil {
		w.Tools = def.Tools
	}
	if w.Job == nil {
		w.Job = def.Job
	}
	if w.Workflow == nil {
		w.Workflow = def.Workflow
	}
	if w.Starters == nil {
		w.Starters = def.Starters
	}
	if w.Ambiguous == nil {
		w.Ambiguous = def.Ambiguous
	}
	if w.AssessmentVerbs == nil {
		w.AssessmentVerbs = def.AssessmentVerbs
	}
	if w.TrickPatterns == nil {
		w.TrickPatterns = def.TrickPatterns
	}
	if w.Recall == nil {
		w.Recall = def.Recall
	}
	if w.AbstractVars == nil {
		w.AbstractVars = def.AbstractVars
	}
	if w.CurrentVersion == "" {
		w.CurrentVersion = def.CurrentVersion
	}
	if w.DeprecatedVersion == "" {
		w.DeprecatedVersion = def.DeprecatedVersion
	}
}

// Validate checks the parts of the configuration that would silently corrupt
// scoring if wrong.
func (c *Config) Validate() error {
	if len(c.Scoring.Weights) != len(CriterionNames) {
		return fmt.Errorf("scoring.weights must define exactly %d criteria, got %d",
			len(CriterionNames), len(c.Scoring.Weights))
	}

	var sum float64
	for _, name := range CriterionNames {
		w, ok := c.Scoring.Weights[name]
		if !ok {
			return fmt.Errorf("scoring.weights missing criterion %q", name)
		}
		if w < 0 {
			return fmt.Errorf("scoring.weights[%q] is negative", name)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("scoring.weights must sum to 1.0, got %.3f", sum)
	}

	if c.Scoring.Threshold < 1.0 || c.Scoring.Threshold > 5.0 {
		return fmt.Errorf("scoring.threshold must be within [1.0, 5.0], got %.2f", c.Scoring.Threshold)
	}

	if c.RAG.MinKeywords < 0 || c.RAG.MaxKeywords < c.RAG.MinKeywords {
		return fmt.Errorf("rag keyword bounds invalid: min=%d max=%d", c.RAG.MinKeywords, c.RAG.MaxKeywords)
	}

	for name, facet := range c.CognitiveDepth.SixFacets {
		if len(facet.Patterns) == 0 {
			return fmt.Errorf("cognitive_depth.six_facets[%q] has no patterns", name)
		}
		if facet.Weight <= 0 {
			return fmt.Errorf("cognitive_depth.six_facets[%q] weight must be positive", name)
		}
	}

	return nil
}
