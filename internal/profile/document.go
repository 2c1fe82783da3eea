package profile

import (
	"time"

	"github.com/goodworkapp/goodwork/internal/scoring"
)

// Document is the aggregate root holding everything the user has entered or
// generated: free-text profile fields, the four screening results, Valou
// styling data, AI reports, job-search state, and the logbook.
//
// Document is treated as an immutable value: mutations go through Clone and
// the With* helpers, and the store performs a compare-and-swap on Version.
type Document struct {
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`

	Personal PersonalTexts `json:"personal"`
	Identity IdentityTexts `json:"identity"`

	Riasec       RiasecScreening     `json:"riasec"`
	BigFive      BigFiveScreening    `json:"bigFive"`
	Motivation   InstrumentScreening `json:"motivation"`
	FutureSkills InstrumentScreening `json:"futureSkills"`

	Valou []ValouArea `json:"valou"`

	Reports   Reports   `json:"reports"`
	JobSearch JobSearch `json:"jobSearch"`

	Logbook []LogbookEntry `json:"logbook"`
}

// PersonalTexts are the general free-text profile fields.
type PersonalTexts struct {
	Beruf           string `json:"beruf"`
	Berufserfahrung string `json:"berufserfahrung"`
	Ausbildung      string `json:"ausbildung"`
	Hobbys          string `json:"hobbys"`
	Lebensmotto     string `json:"lebensmotto"`
}

// IdentityTexts are the manually entered identity fields.
type IdentityTexts struct {
	Staerken   string `json:"staerken"`
	Schwaechen string `json:"schwaechen"`
	Werte      string `json:"werte"`
	Interessen string `json:"interessen"`
	Ziele      string `json:"ziele"`
}

// RiasecScreening holds the interest-questionnaire result.
type RiasecScreening struct {
	LastRun *time.Time            `json:"lastRun,omitempty"`
	Scores  []scoring.AreaScore   `json:"scores,omitempty"`
	Holland scoring.HollandResult `json:"holland,omitempty"`
	// TypeName is the best-effort label extracted from the narrative report;
	// empty means the deterministic Holland.TypeGuess stands.
	TypeName string `json:"typeName,omitempty"`
	Report   string `json:"report,omitempty"`
}

// TypeLabel returns the best available interest-type name: the extracted
// TypeName when present, otherwise the deterministic guess.
func (d Document) TypeLabel() string {
	if d.Riasec.TypeName != "" {
		return d.Riasec.TypeName
	}
	return d.Riasec.Holland.TypeGuess
}

// BigFiveScreening holds the personality-questionnaire result.
type BigFiveScreening struct {
	LastRun *time.Time                      `json:"lastRun,omitempty"`
	Scores  []scoring.BigFiveDimensionScore `json:"scores,omitempty"`
	Report  string                          `json:"report,omitempty"`
}

// InstrumentScreening holds a generic dimension-score result (motivation,
// future skills).
type InstrumentScreening struct {
	LastRun *time.Time               `json:"lastRun,omitempty"`
	Scores  []scoring.DimensionScore `json:"scores,omitempty"`
	Report  string                   `json:"report,omitempty"`
}

// ValouArea is one of the six fixed life areas the user styles.
type ValouArea struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StylingSatz string   `json:"stylingSatz"`
	Vorlieben   []string `json:"vorlieben"`
	Abneigungen []string `json:"abneigungen"`
	MustHaves   []string `json:"mustHaves"`
	NoGos       []string `json:"noGos"`
}

// CategoryItems returns the list for a category id ("vorlieben",
// "abneigungen", "mustHaves", "noGos"); nil for unknown categories.
func (a ValouArea) CategoryItems(category string) []string {
	switch category {
	case "vorlieben":
		return a.Vorlieben
	case "abneigungen":
		return a.Abneigungen
	case "mustHaves":
		return a.MustHaves
	case "noGos":
		return a.NoGos
	default:
		return nil
	}
}

// WithCategoryItems returns a copy with the category list replaced.
func (a ValouArea) WithCategoryItems(category string, items []string) ValouArea {
	switch category {
	case "vorlieben":
		a.Vorlieben = items
	case "abneigungen":
		a.Abneigungen = items
	case "mustHaves":
		a.MustHaves = items
	case "noGos":
		a.NoGos = items
	}
	return a
}

// ValouSuggestion is an AI-proposed styling for one area, as returned by the
// bulk-styling report.
type ValouSuggestion struct {
	StylingSatz string   `json:"stylingSatz"`
	Vorlieben   []string `json:"vorlieben"`
	Abneigungen []string `json:"abneigungen"`
	MustHaves   []string `json:"mustHaves"`
	NoGos       []string `json:"noGos"`
}

// Reports holds the stored AI report strings. Each is either valid content
// or an error string prefixed "Fehler:".
type Reports struct {
	CoachingTips   string `json:"coachingTips,omitempty"`
	Identity       string `json:"identity,omitempty"`
	DecisionMatrix string `json:"decisionMatrix,omitempty"`
	CultureMatch   string `json:"cultureMatch,omitempty"`
	ValouSummary   string `json:"valouSummary,omitempty"`
}

// JobSearch bundles search preferences and the last result set.
type JobSearch struct {
	Preferences JobPreferences `json:"preferences"`
	Matches     []JobMatch     `json:"matches,omitempty"`
	LastRun     *time.Time     `json:"lastRun,omitempty"`
}

// JobPreferences are the user's search constraints.
type JobPreferences struct {
	Region         string   `json:"region"`
	EmploymentType string   `json:"employmentType"`
	Keywords       []string `json:"keywords"`
}

// JobMatch is one AI-found job posting.
type JobMatch struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Snippet        string `json:"snippet"`
	Relevance      string `json:"relevance"`
	URL            string `json:"url"`
	MatchingDegree string `json:"matchingDegree"`
}

// LogbookEntry is one free-form reflection note.
type LogbookEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
}
