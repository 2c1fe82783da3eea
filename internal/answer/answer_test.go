package answer

import (
	"errors"
	"testing"

	"github.com/goodworkapp/goodwork/internal/gemini"
	"github.com/goodworkapp/goodwork/internal/profile"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  \n```json\n[]\n```\n", "[]"},
		{"inner fence kept", "Text mit ```code``` mittendrin", "Text mit ```code``` mittendrin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMarkdownReport(t *testing.T) {
	got, err := MarkdownReport("## Deine Stärken\nText.")
	if err != nil || got != "## Deine Stärken\nText." {
		t.Fatalf("valid report rejected: %q, %v", got, err)
	}

	if _, err := MarkdownReport("   "); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("blank reply: got %v, want ErrEmptyResponse", err)
	}

	_, err = MarkdownReport("Fehler: Zu wenige Profildaten.")
	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error-convention reply: got %v, want AppError", err)
	}
	if appErr.Message != "Fehler: Zu wenige Profildaten." {
		t.Errorf("AppError lost the verbatim message: %q", appErr.Message)
	}
}

func TestExtractTypeName(t *testing.T) {
	report := "## Dein Holland-Code\nDu bist ein **Gestaltender Macher-Typ** mit Hang zur Praxis."
	name, ok := ExtractTypeName(report)
	if !ok || name != "Gestaltender Macher-Typ" {
		t.Errorf("got %q, %v", name, ok)
	}

	name, ok = ExtractTypeName("## Der Forschende Analytiker-Typ\nText ohne Fettdruck.")
	if !ok || name != "Der Forschende Analytiker-Typ" {
		t.Errorf("heading form: got %q, %v", name, ok)
	}

	if _, ok := ExtractTypeName("Ein Report ohne Typ-Namen in erkennbarer Form."); ok {
		t.Error("expected no match for a report without a bold or heading type name")
	}
}

func TestParseJobMatches(t *testing.T) {
	raw := "```json\n" + `[{"title":"Laborleitung","company":"BioTech GmbH","location":"Köln","snippet":"Leitung des Umweltlabors","relevance":"Passt zu Forschung","url":"https://example.org/1","matchingDegree":"85%"}]` + "\n```"
	matches, err := ParseJobMatches(raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Company != "BioTech GmbH" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestParseJobMatches_CitationFallback(t *testing.T) {
	sources := []gemini.Citation{
		{Title: "Stellenportal", URL: "https://jobs.example.org"},
		{URL: "https://example.org/ohne-titel"},
		{Title: "kaputt", URL: "  "},
	}
	matches, err := ParseJobMatches("Hier sind ein paar Stellen, die ich gefunden habe ...", sources)
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("want 2 fallback matches, got %d", len(matches))
	}
	if matches[0].Title != "Stellenportal" || matches[0].MatchingDegree != "N/A" {
		t.Errorf("unexpected fallback match: %+v", matches[0])
	}
	if matches[1].Title != "https://example.org/ohne-titel" {
		t.Errorf("blank title should fall back to URL: %+v", matches[1])
	}
}

func TestParseJobMatches_NoFallbackAvailable(t *testing.T) {
	if _, err := ParseJobMatches("kein JSON", nil); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("got %v, want ErrInvalidJSON", err)
	}
	var appErr *AppError
	if _, err := ParseJobMatches("Fehler: Keine Region angegeben.", nil); !errors.As(err, &appErr) {
		t.Errorf("got %v, want AppError", err)
	}
}

func TestParseCategorySuggestions(t *testing.T) {
	existing := []string{"Labortage", "Freie Zeiteinteilung"}
	raw := `["Labortage", "Feldforschung", "  Feldforschung ", "", "Mentoring"]`

	fresh, err := ParseCategorySuggestions(raw, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Feldforschung", "Mentoring"}
	if len(fresh) != len(want) {
		t.Fatalf("got %v, want %v", fresh, want)
	}
	for i := range want {
		if fresh[i] != want[i] {
			t.Errorf("got %v, want %v", fresh, want)
		}
	}

	// Feeding the reply back against the grown list yields nothing new.
	again, err := ParseCategorySuggestions(raw, append(existing, fresh...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second apply should be a no-op, got %v", again)
	}
}

func TestParseBulkStyling(t *testing.T) {
	raw := `{
		"arbeit": {"stylingSatz": "Ich forsche frei.", "vorlieben": ["Labortage"], "abneigungen": [], "mustHaves": [], "noGos": []},
		"erfundenerBereich": {"stylingSatz": "weg damit"}
	}`
	got, err := ParseBulkStyling(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unknown keys must be dropped, got %d entries", len(got))
	}
	if got[profile.AreaArbeit].StylingSatz != "Ich forsche frei." {
		t.Errorf("unexpected suggestion: %+v", got[profile.AreaArbeit])
	}

	if _, err := ParseBulkStyling(`{"erfundenerBereich": {}}`); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("only-unknown-keys reply: got %v, want ErrInvalidJSON", err)
	}
	if _, err := ParseBulkStyling("keine struktur"); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("got %v, want ErrInvalidJSON", err)
	}
}
