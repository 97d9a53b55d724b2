package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/qforge/internal/question"
)

// IssueCode identifies a detected quality problem. The transformer dispatches
// on codes, never on message text.
type IssueCode string

const (
	CodeSingleWord         IssueCode = "single_word"
	CodeAbstractVars       IssueCode = "abstract_vars"
	CodeMissingBloom       IssueCode = "missing_bloom"
	CodeBloomMismatch      IssueCode = "bloom_mismatch"
	CodeFewKeywords        IssueCode = "few_keywords"
	CodeWesternNames       IssueCode = "western_names"
	CodeNoRealWorld        IssueCode = "no_real_world"
	CodeNoToolContext      IssueCode = "no_tool_context"
	CodeStyleBloomMismatch IssueCode = "style_bloom_mismatch"
	CodeHedging            IssueCode = "hedging"
	CodeShallowDepth       IssueCode = "shallow_depth"
)

// Issue priorities.
const (
	PriorityCritical   = 1
	PriorityImportant  = 2
	PriorityNiceToHave = 3
)

// Issue is one detected quality problem. Description is for display only;
// control flow keys off Code.
type Issue struct {
	Code        IssueCode `json:"code"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Tokens      []string  `json:"tokens,omitempty"`
}

// DetectIssues derives the prioritized issue list for a question and its
// scores. Each rule fires at most once; the result is sorted ascending by
// priority with detection order preserved among ties.
func (a *Analyzer) DetectIssues(q *question.Question, scores ScoreVector) []Issue {
	var issues []Issue

	if q.Style == "single_word" && q.WordCount() == 1 {
		issues = append(issues, Issue{
			Code:        CodeSingleWord,
			Category:    "style",
			Description: "Single-word question needs expansion for semantic search",
			Priority:    PriorityCritical,
		})
	}

	if found := a.distinctAbstractVars(strings.ToLower(q.Question)); len(found) > 0 {
		issues = append(issues, Issue{
			Code:        CodeAbstractVars,
			Category:    "adult_learning",
			Description: fmt.Sprintf("Abstract variables (%s) - use realistic names", strings.Join(found, ", ")),
			Priority:    PriorityCritical,
			Tokens:      found,
		})
	}

	if q.BloomLevel == "" {
		issues = append(issues, Issue{
			Code:        CodeMissingBloom,
			Category:    "blooms",
			Description: "Missing Bloom's taxonomy level",
			Priority:    PriorityImportant,
		})
	}

	if q.BloomLevel != "" && q.Difficulty != "" {
		expected := a.cfg.Blooms[strings.ToLower(q.Difficulty)]
		if !containsFold(expected, strings.ToLower(q.BloomLevel)) {
			issues = append(issues, Issue{
				Code:     CodeBloomMismatch,
				Category: "blooms",
				Description: fmt.Sprintf("Bloom's '%s' doesn't match difficulty '%s'",
					q.BloomLevel, q.Difficulty),
				Priority: PriorityImportant,
			})
		}
	}

	if len(q.Keywords) < a.cfg.RAG.MinKeywords {
		issues = append(issues, Issue{
			Code:     CodeFewKeywords,
			Category: "rag",
			Description: fmt.Sprintf("Only %d keywords - need %d minimum",
				len(q.Keywords), a.cfg.RAG.MinKeywords),
			Priority: PriorityImportant,
		})
	}

	if containsAny(strings.ToLower(q.Question), a.cfg.Templates.WesternNames) {
		issues = append(issues, Issue{
			Code:        CodeWesternNames,
			Category:    "people_first",
			Description: "Use globally diverse names (Priya, Chen, Amara, etc.)",
			Priority:    PriorityImportant,
		})
	}

	if scores.AdultLearning < 3.5 {
		issues = append(issues, Issue{
			Code:        CodeNoRealWorld,
			Category:    "adult_learning",
			Description: "Add real-world context or practical scenario",
			Priority:    PriorityCritical,
		})
	}

	if scores.Practical < 3.5 && q.Difficulty == "stretch" {
		issues = append(issues, Issue{
			Code:        CodeNoToolContext,
			Category:    "practical",
			Description: "Consider mentioning development tools or workflows",
			Priority:    PriorityNiceToHave,
		})
	}

	if scores.ConstructValidity < 3.5 {
		if q.Style != "" && q.BloomLevel != "" {
			expected := a.cfg.ConstructValidity.StyleBloomMap[q.Style]
			if !containsFold(expected, strings.ToLower(q.BloomLevel)) {
				issues = append(issues, Issue{
					Code:     CodeStyleBloomMismatch,
					Category: "construct_validity",
					Description: fmt.Sprintf("Style '%s' doesn't align with Bloom's '%s' - may measure wrong thing",
						q.Style, q.BloomLevel),
					Priority: PriorityCritical,
				})
			}
		}

		if n := countContained(strings.ToLower(q.Question), a.cfg.WordLists.Ambiguous); n > 2 {
			issues = append(issues, Issue{
				Code:        CodeHedging,
				Category:    "construct_validity",
				Description: fmt.Sprintf("Too much ambiguous language (%d terms) - reduces validity", n),
				Priority:    PriorityImportant,
			})
		}
	}

	if scores.CognitiveDepth < 3.0 {
		bloom := strings.ToLower(q.BloomLevel)
		if bloom == "analyze" || bloom == "evaluate" || bloom == "create" {
			issues = append(issues, Issue{
				Code:        CodeShallowDepth,
				Category:    "cognitive_depth",
				Description: "High Bloom's level but shallow depth - add explanation, perspective, or application facets",
				Priority:    PriorityCritical,
			})
		} else {
			issues = append(issues, Issue{
				Code:        CodeShallowDepth,
				Category:    "cognitive_depth",
				Description: "Surface-level question - consider adding 'why', 'how', or 'compare' elements",
				Priority:    PriorityImportant,
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Priority < issues[j].Priority
	})
	return issues
}

// Suggestions renders the issue list as emoji-tagged human guidance.
func (a *Analyzer) Suggestions(q *question.Question, scores ScoreVector) []string {
	issues := a.DetectIssues(q, scores)
	suggestions := make([]string, 0, len(issues))
	for _, issue := range issues {
		var tag string
		switch issue.Priority {
		case PriorityCritical:
			tag = "🔴"
		case PriorityImportant:
			tag = "🟡"
		default:
			tag = "🟢"
		}
		suggestions = append(suggestions, tag+" "+issue.Description)
	}
	return suggestions
}
