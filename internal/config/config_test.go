package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Scoring.Threshold != 4.8 {
		t.Errorf("threshold = %v, want 4.8", cfg.Scoring.Threshold)
	}
	if len(cfg.Scoring.Weights) != len(CriterionNames) {
		t.Errorf("weights has %d entries, want %d", len(cfg.Scoring.Weights), len(CriterionNames))
	}
}

func TestLoadBackfillsTemplates(t *testing.T) {
	path := writeConfig(t, `
scoring:
  weights:
    adult_learning: 0.20
    people_first: 0.15
    blooms: 0.15
    practical: 0.15
    rag: 0.15
    construct_validity: 0.10
    cognitive_depth: 0.10
  threshold: 4.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scoring.Threshold != 4.5 {
		t.Errorf("threshold = %v, want 4.5", cfg.Scoring.Threshold)
	}
	if len(cfg.Templates.Expansions) == 0 {
		t.Error("expansions not backfilled from defaults")
	}
	if len(cfg.WordLists.AbstractVars) == 0 {
		t.Error("word lists not backfilled from defaults")
	}
	if cfg.RAG.MinKeywords != 5 {
		t.Errorf("rag.min_keywords = %d, want 5", cfg.RAG.MinKeywords)
	}
}

func TestLoadBackfillsPartialSections(t *testing.T) {
	// Setting one word list or template must not blank the rest of its
	// section; an empty abstract_vars list would corrupt placeholder matching.
	path := writeConfig(t, `
scoring:
  weights:
    adult_learning: 0.20
    people_first: 0.15
    blooms: 0.15
    practical: 0.15
    rag: 0.15
    construct_validity: 0.10
    cognitive_depth: 0.10
wordlists:
  real_world: ["customer", "invoice"]
templates:
  diverse_names: ["Priya", "Chen"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.WordLists.RealWorld) != 2 {
		t.Errorf("real_world = %v, want the user's two entries", cfg.WordLists.RealWorld)
	}
	if len(cfg.WordLists.AbstractVars) == 0 {
		t.Error("abstract_vars not backfilled alongside a partial wordlists section")
	}
	if len(cfg.WordLists.Gendered) == 0 {
		t.Error("gendered not backfilled alongside a partial wordlists section")
	}
	if cfg.WordLists.CurrentVersion == "" {
		t.Error("current_version not backfilled alongside a partial wordlists section")
	}

	if len(cfg.Templates.DiverseNames) != 2 {
		t.Errorf("diverse_names = %v, want the user's two entries", cfg.Templates.DiverseNames)
	}
	if len(cfg.Templates.Expansions) == 0 {
		t.Error("expansions not backfilled alongside a partial templates section")
	}
	if len(cfg.Templates.VariableDefaults) == 0 {
		t.Error("variable_defaults not backfilled alongside a partial templates section")
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing criterion",
			mutate:  func(c *Config) { delete(c.Scoring.Weights, "blooms") },
			wantErr: "exactly 7 criteria",
		},
		{
			name:    "wrong sum",
			mutate:  func(c *Config) { c.Scoring.Weights["blooms"] = 0.5 },
			wantErr: "sum to 1.0",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Scoring.Weights["rag"] = -0.15 },
			wantErr: "negative",
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Scoring.Threshold = 6.0 },
			wantErr: "threshold",
		},
		{
			name: "bad rag bounds",
			mutate: func(c *Config) {
				c.RAG.MinKeywords = 10
				c.RAG.MaxKeywords = 3
			},
			wantErr: "rag keyword bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsIncompleteWeights(t *testing.T) {
	path := writeConfig(t, `
scoring:
  weights:
    adult_learning: 1.0
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded with a single weight, want error")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "scoring: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed YAML, want error")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
