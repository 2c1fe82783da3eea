package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goodworkapp/goodwork/internal/answer"
	"github.com/goodworkapp/goodwork/internal/gemini"
	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/prompt"
	"github.com/goodworkapp/goodwork/internal/scoring"
	"github.com/goodworkapp/goodwork/internal/storage"
)

type fakeGateway struct {
	reply   gemini.Reply
	err     error
	prompts []string
	opts    []gemini.Options
}

func (f *fakeGateway) Generate(_ context.Context, promptText string, opts gemini.Options) (gemini.Reply, error) {
	f.prompts = append(f.prompts, promptText)
	f.opts = append(f.opts, opts)
	return f.reply, f.err
}

func newTestService(t *testing.T, gw Gateway) (*Service, *storage.Store) {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, gw, nil), store
}

func seedScreenedDocument(t *testing.T, store *storage.Store) {
	t.Helper()
	doc, err := store.LoadDocument()
	if err != nil {
		t.Fatalf("loading document: %v", err)
	}
	now := time.Now()
	riasec := scoring.RiasecScores(map[string]int{"R1": 9, "I1": 8})
	doc = doc.WithRiasecResult(riasec, scoring.DeriveHolland(riasec), now)
	doc.Personal.Beruf = "Biologin"
	if err := store.SaveDocument(&doc); err != nil {
		t.Fatalf("seeding document: %v", err)
	}
}

func TestGenerateReport_StoresContent(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: "## Dein Holland-Code\nDu bist ein **Neugieriger Entdecker-Typ**."}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	got, err := svc.GenerateReport(context.Background(), prompt.KindRiasecReport, prompt.Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Entdecker-Typ") {
		t.Errorf("unexpected content: %q", got)
	}

	doc, err := store.LoadDocument()
	if err != nil {
		t.Fatalf("reloading document: %v", err)
	}
	if doc.Riasec.Report != got {
		t.Error("report not stored on the document")
	}
	if doc.Riasec.TypeName != "Neugieriger Entdecker-Typ" {
		t.Errorf("type name not extracted: %q", doc.Riasec.TypeName)
	}

	history, err := store.ListReports(string(prompt.KindRiasecReport), 10)
	if err != nil {
		t.Fatalf("listing history: %v", err)
	}
	if len(history) != 1 || history[0].Content != got {
		t.Errorf("history not appended: %+v", history)
	}
}

func TestGenerateReport_PreconditionBlocksWithoutGatewayCall(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: "sollte nie ankommen"}}
	svc, _ := newTestService(t, gw)

	_, err := svc.GenerateReport(context.Background(), prompt.KindRiasecReport, prompt.Params{})
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("got %v, want PreconditionError", err)
	}
	if len(gw.prompts) != 0 {
		t.Error("gateway must not be called when the precondition fails")
	}
}

func TestGenerateReport_ModelErrorStoredVerbatim(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: "Fehler: timeout"}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	got, err := svc.GenerateReport(context.Background(), prompt.KindRiasecReport, prompt.Params{})
	var appErr *answer.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("got %v, want AppError", err)
	}
	if got != "Fehler: timeout" {
		t.Errorf("error string must be stored verbatim, got %q", got)
	}
	doc, _ := store.LoadDocument()
	if doc.Riasec.Report != "Fehler: timeout" {
		t.Errorf("stored report: %q", doc.Riasec.Report)
	}
	if doc.Riasec.TypeName != "" {
		t.Errorf("type name must not be extracted from an error string: %q", doc.Riasec.TypeName)
	}
}

func TestGenerateReport_NilGatewayStoresFixedMessage(t *testing.T) {
	svc, store := newTestService(t, nil)
	seedScreenedDocument(t, store)

	got, err := svc.GenerateReport(context.Background(), prompt.KindRiasecReport, prompt.Params{})
	if !errors.Is(err, ErrNoGateway) {
		t.Fatalf("got %v, want ErrNoGateway", err)
	}
	if got != "Fehler: Kein Gemini-API-Schlüssel konfiguriert." {
		t.Errorf("unexpected message: %q", got)
	}
	doc, _ := store.LoadDocument()
	if doc.Riasec.Report != got {
		t.Error("fixed message not stored on the document")
	}
}

func TestGenerateReport_ValouStylingStoredOnArea(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: "Ich arbeite frei und sinnvoll."}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	got, err := svc.GenerateReport(context.Background(), prompt.KindValouStyling, prompt.Params{AreaID: profile.AreaArbeit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Ich arbeite frei und sinnvoll." {
		t.Errorf("unexpected sentence: %q", got)
	}

	doc, err := store.LoadDocument()
	if err != nil {
		t.Fatalf("reloading document: %v", err)
	}
	area, _ := doc.Area(profile.AreaArbeit)
	if area.StylingSatz != got {
		t.Errorf("sentence not stored on the area: %q", area.StylingSatz)
	}
}

func TestSearchJobs_StoresMatches(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{
		Text: `[{"title":"Laborleitung","company":"BioTech GmbH","location":"Köln","snippet":"x","relevance":"y","url":"https://example.org","matchingDegree":"80%"}]`,
	}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	prefs := profile.JobPreferences{Region: "Köln", EmploymentType: "Vollzeit", Keywords: []string{"Labor"}}
	matches, err := svc.SearchJobs(context.Background(), prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("want 1 match, got %d", len(matches))
	}
	if !gw.opts[0].UseWebSearch {
		t.Error("job search must enable web search")
	}
	if !strings.Contains(gw.prompts[0], "Köln") {
		t.Error("preferences missing from the prompt")
	}

	doc, _ := store.LoadDocument()
	if len(doc.JobSearch.Matches) != 1 || doc.JobSearch.LastRun == nil {
		t.Errorf("search result not stored: %+v", doc.JobSearch)
	}
	if doc.JobSearch.Preferences.Region != "Köln" {
		t.Errorf("preferences not stored: %+v", doc.JobSearch.Preferences)
	}
}

func TestSuggestCategoryItems_AppendsWithoutDuplicates(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: `["Labortage", "Feldforschung"]`}}
	svc, store := newTestService(t, gw)

	doc, _ := store.LoadDocument()
	area, _ := doc.Area(profile.AreaArbeit)
	area.Vorlieben = []string{"Labortage"}
	doc = doc.WithValouArea(area)
	doc.Personal.Beruf = "Biologin"
	if err := store.SaveDocument(&doc); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	fresh, err := svc.SuggestCategoryItems(context.Background(), profile.AreaArbeit, "vorlieben")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fresh) != 1 || fresh[0] != "Feldforschung" {
		t.Errorf("got %v, want just the new entry", fresh)
	}

	stored, _ := store.LoadDocument()
	got, _ := stored.Area(profile.AreaArbeit)
	if len(got.Vorlieben) != 2 {
		t.Errorf("stored list: %v", got.Vorlieben)
	}
}

func TestSuggestAllValou_PreservesHandwrittenStyling(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: `{
		"arbeit": {"stylingSatz": "KI-Satz.", "vorlieben": ["Neu"], "abneigungen": [], "mustHaves": [], "noGos": []}
	}`}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	doc, _ := store.LoadDocument()
	area, _ := doc.Area(profile.AreaArbeit)
	area.StylingSatz = "Mein eigener Satz."
	area.Vorlieben = []string{"Alt"}
	doc = doc.WithValouArea(area)
	if err := store.SaveDocument(&doc); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	if _, err := svc.SuggestAllValou(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.LoadDocument()
	got, _ := stored.Area(profile.AreaArbeit)
	if got.StylingSatz != "Mein eigener Satz." {
		t.Errorf("hand-written styling overwritten: %q", got.StylingSatz)
	}
	if len(got.Vorlieben) != 2 {
		t.Errorf("lists not unioned: %v", got.Vorlieben)
	}
}

func TestSuggestAllValou_PreconditionOnEmptyProfile(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{})
	_, err := svc.SuggestAllValou(context.Background())
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("got %v, want PreconditionError", err)
	}
}

func TestApply_RetriesOnVersionConflict(t *testing.T) {
	gw := &fakeGateway{reply: gemini.Reply{Text: "## Report\nInhalt."}}
	svc, store := newTestService(t, gw)
	seedScreenedDocument(t, store)

	// Load, then let a concurrent writer move the version before the
	// service saves.
	doc, _ := store.LoadDocument()
	other, _ := store.LoadDocument()
	other.Personal.Hobbys = "Imkern"
	if err := store.SaveDocument(&other); err != nil {
		t.Fatalf("concurrent save: %v", err)
	}

	if err := svc.apply(doc, func(d profile.Document) profile.Document {
		cp := d.Clone()
		cp.Personal.Lebensmotto = "Neugier zuerst"
		return cp
	}); err != nil {
		t.Fatalf("apply should retry once: %v", err)
	}

	stored, _ := store.LoadDocument()
	if stored.Personal.Hobbys != "Imkern" || stored.Personal.Lebensmotto != "Neugier zuerst" {
		t.Errorf("retry lost a write: %+v", stored.Personal)
	}
}
