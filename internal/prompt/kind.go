package prompt

import "fmt"

// Kind identifies one report or suggestion type.
type Kind string

const (
	KindCoachingTips        Kind = "coaching_tips"
	KindRiasecReport        Kind = "riasec_report"
	KindPersonalityReport   Kind = "personality_report"
	KindMotivationReport    Kind = "motivation_report"
	KindFutureSkillsReport  Kind = "futureskills_report"
	KindIdentityReport      Kind = "identity_report"
	KindDecisionMatrix      Kind = "decision_matrix"
	KindCultureMatch        Kind = "culture_match"
	KindJobSearch           Kind = "job_search"
	KindValouStyling        Kind = "valou_styling"
	KindCategorySuggestions Kind = "category_suggestions"
	KindValouBulkStyling    Kind = "valou_bulk_styling"
	KindValouSummary        Kind = "valou_summary"
)

// MarkdownKinds produce a free-form Markdown report.
var markdownKinds = map[Kind]bool{
	KindCoachingTips:       true,
	KindRiasecReport:       true,
	KindPersonalityReport:  true,
	KindMotivationReport:   true,
	KindFutureSkillsReport: true,
	KindIdentityReport:     true,
	KindDecisionMatrix:     true,
	KindCultureMatch:       true,
	KindValouSummary:       true,
	KindValouStyling:       true,
}

// jsonKinds must answer with bare JSON.
var jsonKinds = map[Kind]bool{
	KindJobSearch:           true,
	KindCategorySuggestions: true,
	KindValouBulkStyling:    true,
}

// IsMarkdown reports whether the kind yields a Markdown report.
func (k Kind) IsMarkdown() bool { return markdownKinds[k] }

// IsJSON reports whether the kind must answer with bare JSON.
func (k Kind) IsJSON() bool { return jsonKinds[k] }

// ParseKind validates a kind string from the API surface.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsMarkdown() && !k.IsJSON() {
		return "", fmt.Errorf("unknown report kind %q", s)
	}
	return k, nil
}
