package prompt

import (
	"errors"
	"fmt"

	"github.com/goodworkapp/goodwork/internal/profile"
)

// ErrInvalidParams marks a caller-side parameter problem (missing decision
// options, unknown area or category), as opposed to a model or transport
// failure.
var ErrInvalidParams = errors.New("invalid report parameters")

// Params carries per-kind inputs beyond the profile document.
type Params struct {
	// AreaID selects the Valou area for styling/suggestion kinds.
	AreaID string `json:"areaId,omitempty"`
	// Category selects the list ("vorlieben", "abneigungen", "mustHaves",
	// "noGos") for category suggestions.
	Category string `json:"category,omitempty"`
	// DecisionQuestion and DecisionOptions feed the decision matrix.
	DecisionQuestion string   `json:"decisionQuestion,omitempty"`
	DecisionOptions  []string `json:"decisionOptions,omitempty"`
	// CompanyName and CompanyCulture feed the culture match.
	CompanyName    string `json:"companyName,omitempty"`
	CompanyCulture string `json:"companyCulture,omitempty"`
}

// Build assembles the deterministic prompt for the given report kind.
// Builders serialize every documented data source, substituting the fixed
// placeholder for blank fields.
func Build(kind Kind, doc profile.Document, p Params) (string, error) {
	switch kind {
	case KindCoachingTips:
		return buildCoachingTips(doc), nil
	case KindRiasecReport:
		return buildRiasecReport(doc), nil
	case KindPersonalityReport:
		return buildPersonalityReport(doc), nil
	case KindMotivationReport:
		return buildMotivationReport(doc), nil
	case KindFutureSkillsReport:
		return buildFutureSkillsReport(doc), nil
	case KindIdentityReport:
		return buildIdentityReport(doc), nil
	case KindDecisionMatrix:
		return buildDecisionMatrix(doc, p)
	case KindCultureMatch:
		return buildCultureMatch(doc, p)
	case KindJobSearch:
		return buildJobSearch(doc), nil
	case KindValouStyling:
		return buildValouStyling(doc, p)
	case KindCategorySuggestions:
		return buildCategorySuggestions(doc, p)
	case KindValouBulkStyling:
		return buildValouBulkStyling(doc), nil
	case KindValouSummary:
		return buildValouSummary(doc), nil
	default:
		return "", fmt.Errorf("unknown report kind %q", kind)
	}
}
