package prompt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/scoring"
)

func filledDocument(t *testing.T) profile.Document {
	t.Helper()
	now := time.Now()
	doc := profile.NewDocument()
	doc.Personal = profile.PersonalTexts{
		Beruf:           "Biologin",
		Berufserfahrung: "10 Jahre Forschung",
		Ausbildung:      "Promotion",
		Hobbys:          "Imkern",
		Lebensmotto:     "Neugier zuerst",
	}
	doc.Identity = profile.IdentityTexts{
		Staerken:   "Analytik",
		Schwaechen: "Ungeduld",
		Werte:      "Unabhängigkeit",
		Interessen: "Ökologie",
		Ziele:      "Eigenes Labor",
	}
	riasec := scoring.RiasecScores(map[string]int{"I1": 10, "I2": 10})
	doc = doc.WithRiasecResult(riasec, scoring.DeriveHolland(riasec), now)
	doc = doc.WithBigFiveResult(scoring.AggregateBigFive(nil), now)
	doc = doc.WithMotivationResult(scoring.Aggregate(scoring.MotivationInstrument(), nil), now)
	doc = doc.WithFutureSkillsResult(scoring.Aggregate(scoring.FutureSkillsInstrument(), nil), now)
	area, _ := doc.Area(profile.AreaArbeit)
	area.StylingSatz = "Ich forsche frei."
	area.Vorlieben = []string{"Labortage"}
	doc = doc.WithValouArea(area)
	return doc
}

// Builders documented to include contextual profile data must serialize
// every known field verbatim (or as placeholder).
func TestBuild_IncludesAllProfileFields(t *testing.T) {
	doc := filledDocument(t)
	kinds := []Kind{KindCoachingTips, KindIdentityReport, KindValouBulkStyling, KindJobSearch}

	wantVerbatim := []string{
		"Biologin", "10 Jahre Forschung", "Promotion", "Imkern", "Neugier zuerst",
		"Analytik", "Ungeduld", "Unabhängigkeit", "Ökologie", "Eigenes Labor",
		"Ich forsche frei.", "Labortage",
		"Motivation", "Future Skills", "Holland-Code",
	}

	for _, kind := range kinds {
		got, err := Build(kind, doc, Params{})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		for _, want := range wantVerbatim {
			if !strings.Contains(got, want) {
				t.Errorf("%s: prompt missing %q", kind, want)
			}
		}
	}
}

func TestBuild_BlankFieldsBecomePlaceholder(t *testing.T) {
	got, err := Build(KindCoachingTips, profile.NewDocument(), Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Beruf: "+Placeholder) {
		t.Errorf("blank Beruf not rendered as placeholder:\n%s", got)
	}
}

func TestBuild_JSONKindsEmbedContract(t *testing.T) {
	doc := filledDocument(t)
	cases := map[Kind]Params{
		KindJobSearch:           {},
		KindCategorySuggestions: {AreaID: profile.AreaArbeit, Category: "vorlieben"},
		KindValouBulkStyling:    {},
	}
	for kind, p := range cases {
		got, err := Build(kind, doc, p)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		for _, want := range []string{"ausschließlich mit", "JSON", "ohne Markdown-Zäune", "Beispiel", "Schema"} {
			if !strings.Contains(got, want) {
				t.Errorf("%s: JSON contract missing %q", kind, want)
			}
		}
	}
}

func TestBuild_IdentityReportBranches(t *testing.T) {
	partial, err := Build(KindIdentityReport, profile.NewDocument(), Params{})
	if err != nil {
		t.Fatalf("partial: %v", err)
	}
	complete, err := Build(KindIdentityReport, filledDocument(t), Params{})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(partial, "Teildaten") {
		t.Error("partial-data branch not selected for empty document")
	}
	if !strings.Contains(complete, "Alle vier Screenings") {
		t.Error("complete branch not selected when all screenings done")
	}
}

func TestBuild_DecisionMatrixValidation(t *testing.T) {
	doc := filledDocument(t)
	if _, err := Build(KindDecisionMatrix, doc, Params{DecisionQuestion: "Jobwechsel?"}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("got %v, want ErrInvalidParams for fewer than two options", err)
	}
	got, err := Build(KindDecisionMatrix, doc, Params{
		DecisionQuestion: "Bleiben oder wechseln?",
		DecisionOptions:  []string{"Bleiben", "Wechseln"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Bleiben oder wechseln?") || !strings.Contains(got, "2. Wechseln") {
		t.Errorf("options not serialized:\n%s", got)
	}
}

func TestBuild_CategorySuggestionsListsExisting(t *testing.T) {
	doc := filledDocument(t)
	got, err := Build(KindCategorySuggestions, doc, Params{AreaID: profile.AreaArbeit, Category: "vorlieben"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "- Labortage") {
		t.Error("existing category entries must be listed")
	}

	if _, err := Build(KindCategorySuggestions, doc, Params{AreaID: "nope", Category: "vorlieben"}); err == nil {
		t.Error("expected error for unknown area")
	}
	if _, err := Build(KindCategorySuggestions, doc, Params{AreaID: profile.AreaArbeit, Category: "nope"}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestParseKind(t *testing.T) {
	if _, err := ParseKind("coaching_tips"); err != nil {
		t.Errorf("known kind rejected: %v", err)
	}
	if _, err := ParseKind("bogus"); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	doc := filledDocument(t)
	a, _ := Build(KindCoachingTips, doc, Params{})
	b, _ := Build(KindCoachingTips, doc, Params{})
	if a != b {
		t.Error("builder is not deterministic for identical input")
	}
}
