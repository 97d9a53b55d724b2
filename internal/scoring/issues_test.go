package scoring

import (
	"testing"

	"github.com/dotcommander/qforge/internal/question"
)

func detect(t *testing.T, q *question.Question) []Issue {
	t.Helper()
	a := newTestAnalyzer(t)
	return a.DetectIssues(q, a.Analyze(q))
}

func hasCode(issues []Issue, code IssueCode) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func TestDetectIssuesRules(t *testing.T) {
	tests := []struct {
		name     string
		q        *question.Question
		want     IssueCode
		priority int
	}{
		{
			name:     "single word",
			q:        &question.Question{Question: "scope", Style: "single_word", Difficulty: "starter"},
			want:     CodeSingleWord,
			priority: PriorityCritical,
		},
		{
			name:     "abstract variables",
			q:        &question.Question{Question: "Swap x and y.", Style: "short_question", Difficulty: "core"},
			want:     CodeAbstractVars,
			priority: PriorityCritical,
		},
		{
			name: "missing bloom",
			q: &question.Question{
				Question: "Build a customer report from the sales data.",
				Style:    "scenario_task", Difficulty: "core",
			},
			want:     CodeMissingBloom,
			priority: PriorityImportant,
		},
		{
			name: "bloom mismatch",
			q: &question.Question{
				Question: "Build a customer report from the sales data.",
				Style:    "scenario_task", Difficulty: "starter", BloomLevel: "create",
			},
			want:     CodeBloomMismatch,
			priority: PriorityImportant,
		},
		{
			name: "few keywords",
			q: &question.Question{
				Question: "Build a customer report from the sales data.",
				Style:    "scenario_task", Difficulty: "core", BloomLevel: "apply",
				Keywords: []string{"report"},
			},
			want:     CodeFewKeywords,
			priority: PriorityImportant,
		},
		{
			name: "western names",
			q: &question.Question{
				Question: "Alice tracks customer sales data in a report.",
				Style:    "short_question", Difficulty: "core", BloomLevel: "understand",
			},
			want:     CodeWesternNames,
			priority: PriorityImportant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := detect(t, tt.q)
			if !hasCode(issues, tt.want) {
				t.Fatalf("issues %v missing code %s", issues, tt.want)
			}
			for _, issue := range issues {
				if issue.Code == tt.want && issue.Priority != tt.priority {
					t.Errorf("priority = %d, want %d", issue.Priority, tt.priority)
				}
			}
		})
	}
}

func TestDetectIssuesAbstractVarTokens(t *testing.T) {
	issues := detect(t, &question.Question{
		Question: "Swap x and y in the code.",
		Style:    "short_question", Difficulty: "core",
	})

	for _, issue := range issues {
		if issue.Code != CodeAbstractVars {
			continue
		}
		if len(issue.Tokens) != 2 || issue.Tokens[0] != "x" || issue.Tokens[1] != "y" {
			t.Errorf("tokens = %v, want [x y] in appearance order", issue.Tokens)
		}
		return
	}
	t.Fatal("abstract variable issue not detected")
}

func TestDetectIssuesSortedByPriority(t *testing.T) {
	// A deliberately messy record trips critical and non-critical rules at once.
	issues := detect(t, &question.Question{
		Question: "scope", Style: "single_word", Difficulty: "starter", BloomLevel: "create",
	})

	if len(issues) < 2 {
		t.Fatalf("expected multiple issues, got %v", issues)
	}
	for i := 1; i < len(issues); i++ {
		if issues[i].Priority < issues[i-1].Priority {
			t.Errorf("issues out of priority order at %d: %v", i, issues)
		}
	}
	if issues[0].Priority != PriorityCritical {
		t.Errorf("first issue priority = %d, want critical", issues[0].Priority)
	}
}

func TestSuggestionsTagByPriority(t *testing.T) {
	a := newTestAnalyzer(t)
	q := &question.Question{Question: "scope", Style: "single_word", Difficulty: "starter"}

	suggestions := a.Suggestions(q, a.Analyze(q))
	if len(suggestions) == 0 {
		t.Fatal("expected suggestions for a weak question")
	}
	if suggestions[0][:len("🔴")] != "🔴" {
		t.Errorf("top suggestion %q should carry the critical tag", suggestions[0])
	}
}
