// Package report orchestrates one AI action end to end: load the profile
// document, gate on preconditions, build the prompt, call the gateway, parse
// the reply, and persist the outcome. Errors become the stored "Fehler:"
// string exactly here; everything below works with typed errors.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goodworkapp/goodwork/internal/answer"
	"github.com/goodworkapp/goodwork/internal/gemini"
	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/prompt"
	"github.com/goodworkapp/goodwork/internal/storage"
)

// ErrNoGateway is returned when no Gemini API key is configured. The stored
// report string for this case is fixed so the UI can match on it.
var ErrNoGateway = errors.New("no AI gateway configured")

const msgNoCredentials = "Fehler: Kein Gemini-API-Schlüssel konfiguriert."

// PreconditionError signals that the document does not yet hold the data a
// report kind requires. No gateway call is made.
type PreconditionError struct {
	Kind   prompt.Kind
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("report %s: %s", e.Kind, e.Reason)
}

// Gateway generates model replies. *gemini.Client satisfies it.
type Gateway interface {
	Generate(ctx context.Context, promptText string, opts gemini.Options) (gemini.Reply, error)
}

// DocumentStore persists the profile document and the report history.
// *storage.Store satisfies it.
type DocumentStore interface {
	LoadDocument() (profile.Document, error)
	SaveDocument(doc *profile.Document) error
	AppendReport(r storage.ReportRecord) error
}

// Service runs AI actions against the stored profile document.
type Service struct {
	store DocumentStore
	gw    Gateway
	log   *slog.Logger
	now   func() time.Time
}

// New creates a report service. gw may be nil when no API key is configured;
// every AI action then fails fast with ErrNoGateway.
func New(store DocumentStore, gw Gateway, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, gw: gw, log: log, now: time.Now}
}

// GenerateReport runs one Markdown report kind and persists the result on the
// document plus the report history. The returned string is the stored
// content; when the model answered with the error convention, the error
// string is stored verbatim and returned inside an answer.AppError.
func (s *Service) GenerateReport(ctx context.Context, kind prompt.Kind, p prompt.Params) (string, error) {
	if !kind.IsMarkdown() {
		return "", fmt.Errorf("kind %s is not a Markdown report", kind)
	}
	if kind == prompt.KindValouStyling {
		// The styling sentence lives on its Valou area, not on a report
		// field, so the styling flow owns persistence.
		return s.SuggestStylingSentence(ctx, p.AreaID)
	}

	doc, err := s.store.LoadDocument()
	if err != nil {
		return "", err
	}
	if err := checkPrecondition(kind, doc); err != nil {
		return "", err
	}
	if s.gw == nil {
		// Persist the fixed message so the stored report explains itself.
		_ = s.apply(doc, func(d profile.Document) profile.Document {
			return withReport(d, kind, msgNoCredentials)
		})
		return msgNoCredentials, ErrNoGateway
	}

	text, err := prompt.Build(kind, doc, p)
	if err != nil {
		return "", err
	}

	reply, err := s.gw.Generate(ctx, text, gemini.Options{})
	if err != nil {
		return "", fmt.Errorf("generating %s: %w", kind, err)
	}

	content, parseErr := answer.MarkdownReport(reply.Text)
	var appErr *answer.AppError
	if errors.As(parseErr, &appErr) {
		// The model reported a domain problem; store it verbatim.
		content = appErr.Message
	} else if parseErr != nil {
		return "", fmt.Errorf("parsing %s reply: %w", kind, parseErr)
	}

	if err := s.apply(doc, func(d profile.Document) profile.Document {
		return withReport(d, kind, content)
	}); err != nil {
		return "", err
	}
	if err := s.store.AppendReport(storage.ReportRecord{
		Kind:      string(kind),
		Content:   content,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		s.log.Warn("appending report history failed", "kind", kind, "error", err)
	}
	s.log.Info("report generated", "kind", kind, "chars", len(content))

	if appErr != nil {
		return content, appErr
	}
	return content, nil
}

// GenerateAll runs every screening report whose data is present, plus the
// coaching tips, concurrently. The first failure cancels the rest.
func (s *Service) GenerateAll(ctx context.Context) error {
	doc, err := s.store.LoadDocument()
	if err != nil {
		return err
	}

	var kinds []prompt.Kind
	if doc.RiasecComplete() {
		kinds = append(kinds, prompt.KindRiasecReport)
	}
	if doc.BigFiveComplete() {
		kinds = append(kinds, prompt.KindPersonalityReport)
	}
	if doc.MotivationComplete() {
		kinds = append(kinds, prompt.KindMotivationReport)
	}
	if doc.FutureSkillsComplete() {
		kinds = append(kinds, prompt.KindFutureSkillsReport)
	}
	if doc.SufficientForAiStyling() {
		kinds = append(kinds, prompt.KindCoachingTips, prompt.KindIdentityReport)
	}
	if len(kinds) == 0 {
		return &PreconditionError{Kind: "all", Reason: "keine auswertbaren Profildaten vorhanden"}
	}
	return s.generateConcurrently(ctx, kinds)
}

// SearchJobs runs a grounded web search for matching jobs and stores the
// result set on the document.
func (s *Service) SearchJobs(ctx context.Context, prefs profile.JobPreferences) ([]profile.JobMatch, error) {
	doc, err := s.store.LoadDocument()
	if err != nil {
		return nil, err
	}
	if s.gw == nil {
		return nil, ErrNoGateway
	}

	doc.JobSearch.Preferences = prefs
	text, err := prompt.Build(prompt.KindJobSearch, doc, prompt.Params{})
	if err != nil {
		return nil, err
	}

	reply, err := s.gw.Generate(ctx, text, gemini.Options{ExpectJSON: true, UseWebSearch: true})
	if err != nil {
		return nil, fmt.Errorf("searching jobs: %w", err)
	}
	matches, err := answer.ParseJobMatches(reply.Text, reply.Sources)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.apply(doc, func(d profile.Document) profile.Document {
		cp := d.Clone()
		cp.JobSearch.Preferences = prefs
		cp.JobSearch.Matches = matches
		cp.JobSearch.LastRun = &now
		return cp
	}); err != nil {
		return nil, err
	}
	s.log.Info("job search completed", "matches", len(matches))
	return matches, nil
}

// SuggestCategoryItems asks for new entries for one Valou category and
// appends them to the area. Entries the area already holds are never
// duplicated, so repeating the call is safe.
func (s *Service) SuggestCategoryItems(ctx context.Context, areaID, category string) ([]string, error) {
	doc, err := s.store.LoadDocument()
	if err != nil {
		return nil, err
	}
	if s.gw == nil {
		return nil, ErrNoGateway
	}

	text, err := prompt.Build(prompt.KindCategorySuggestions, doc, prompt.Params{AreaID: areaID, Category: category})
	if err != nil {
		return nil, err
	}
	reply, err := s.gw.Generate(ctx, text, gemini.Options{ExpectJSON: true})
	if err != nil {
		return nil, fmt.Errorf("suggesting %s/%s: %w", areaID, category, err)
	}

	area, ok := doc.Area(areaID)
	if !ok {
		return nil, fmt.Errorf("unknown Valou area %q", areaID)
	}
	fresh, err := answer.ParseCategorySuggestions(reply.Text, area.CategoryItems(category))
	if err != nil {
		return nil, err
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	if err := s.apply(doc, func(d profile.Document) profile.Document {
		a, ok := d.Area(areaID)
		if !ok {
			return d
		}
		merged := a.WithCategoryItems(category, unionAppend(a.CategoryItems(category), fresh))
		return d.WithValouArea(merged)
	}); err != nil {
		return nil, err
	}
	return fresh, nil
}

// SuggestStylingSentence generates a one-sentence styling for an area and
// stores it. An existing sentence is overwritten: the single-sentence action
// is an explicit request, unlike the bulk merge.
func (s *Service) SuggestStylingSentence(ctx context.Context, areaID string) (string, error) {
	doc, err := s.store.LoadDocument()
	if err != nil {
		return "", err
	}
	if !doc.SufficientForAiStyling() {
		return "", &PreconditionError{Kind: prompt.KindValouStyling, Reason: "zu wenige Profildaten für das Styling"}
	}
	if s.gw == nil {
		return "", ErrNoGateway
	}

	text, err := prompt.Build(prompt.KindValouStyling, doc, prompt.Params{AreaID: areaID})
	if err != nil {
		return "", err
	}
	reply, err := s.gw.Generate(ctx, text, gemini.Options{})
	if err != nil {
		return "", fmt.Errorf("styling %s: %w", areaID, err)
	}
	sentence, err := answer.MarkdownReport(reply.Text)
	if err != nil {
		return "", err
	}

	if err := s.apply(doc, func(d profile.Document) profile.Document {
		a, ok := d.Area(areaID)
		if !ok {
			return d
		}
		a.StylingSatz = sentence
		return d.WithValouArea(a)
	}); err != nil {
		return "", err
	}
	return sentence, nil
}

// SuggestAllValou runs the bulk styling and merges every suggested area into
// the document: list entries are unioned, a hand-written styling sentence is
// never overwritten.
func (s *Service) SuggestAllValou(ctx context.Context) (map[string]profile.ValouSuggestion, error) {
	doc, err := s.store.LoadDocument()
	if err != nil {
		return nil, err
	}
	if !doc.SufficientForAiStyling() {
		return nil, &PreconditionError{Kind: prompt.KindValouBulkStyling, Reason: "zu wenige Profildaten für das Styling"}
	}
	if s.gw == nil {
		return nil, ErrNoGateway
	}

	text, err := prompt.Build(prompt.KindValouBulkStyling, doc, prompt.Params{})
	if err != nil {
		return nil, err
	}
	reply, err := s.gw.Generate(ctx, text, gemini.Options{ExpectJSON: true})
	if err != nil {
		return nil, fmt.Errorf("bulk styling: %w", err)
	}
	suggestions, err := answer.ParseBulkStyling(reply.Text)
	if err != nil {
		return nil, err
	}

	if err := s.apply(doc, func(d profile.Document) profile.Document {
		out := d
		for id, sug := range suggestions {
			a, ok := out.Area(id)
			if !ok {
				continue
			}
			out = out.WithValouArea(profile.MergeSuggestion(a, sug))
		}
		return out
	}); err != nil {
		return nil, err
	}
	s.log.Info("bulk styling merged", "areas", len(suggestions))
	return suggestions, nil
}

// apply persists a mutation of the document with one reload-retry when a
// concurrent writer moved the version.
func (s *Service) apply(doc profile.Document, mutate func(profile.Document) profile.Document) error {
	next := mutate(doc)
	err := s.store.SaveDocument(&next)
	if !errors.Is(err, storage.ErrVersionConflict) {
		return err
	}

	fresh, err := s.store.LoadDocument()
	if err != nil {
		return err
	}
	next = mutate(fresh)
	return s.store.SaveDocument(&next)
}

// withReport writes the generated content to the document field owning the
// kind. The interest report additionally refreshes the extracted type name.
func withReport(d profile.Document, kind prompt.Kind, content string) profile.Document {
	cp := d.Clone()
	switch kind {
	case prompt.KindCoachingTips:
		cp.Reports.CoachingTips = content
	case prompt.KindRiasecReport:
		cp.Riasec.Report = content
		if name, ok := answer.ExtractTypeName(content); ok {
			cp.Riasec.TypeName = name
		}
	case prompt.KindPersonalityReport:
		cp.BigFive.Report = content
	case prompt.KindMotivationReport:
		cp.Motivation.Report = content
	case prompt.KindFutureSkillsReport:
		cp.FutureSkills.Report = content
	case prompt.KindIdentityReport:
		cp.Reports.Identity = content
	case prompt.KindDecisionMatrix:
		cp.Reports.DecisionMatrix = content
	case prompt.KindCultureMatch:
		cp.Reports.CultureMatch = content
	case prompt.KindValouSummary:
		cp.Reports.ValouSummary = content
	}
	return cp
}

func checkPrecondition(kind prompt.Kind, doc profile.Document) error {
	switch kind {
	case prompt.KindRiasecReport:
		if !doc.RiasecComplete() {
			return &PreconditionError{Kind: kind, Reason: "das Interessen-Screening wurde noch nicht durchgeführt"}
		}
	case prompt.KindPersonalityReport:
		if !doc.BigFiveComplete() {
			return &PreconditionError{Kind: kind, Reason: "das Persönlichkeits-Screening wurde noch nicht durchgeführt"}
		}
	case prompt.KindMotivationReport:
		if !doc.MotivationComplete() {
			return &PreconditionError{Kind: kind, Reason: "das Motivations-Screening wurde noch nicht durchgeführt"}
		}
	case prompt.KindFutureSkillsReport:
		if !doc.FutureSkillsComplete() {
			return &PreconditionError{Kind: kind, Reason: "das Future-Skills-Screening wurde noch nicht durchgeführt"}
		}
	case prompt.KindCoachingTips, prompt.KindIdentityReport:
		if !doc.SufficientForAiStyling() {
			return &PreconditionError{Kind: kind, Reason: "zu wenige Profildaten für diesen Report"}
		}
	case prompt.KindValouSummary:
		if doc.ValouEffectivelyEmpty() {
			return &PreconditionError{Kind: kind, Reason: "die Valou-Bereiche sind noch leer"}
		}
	}
	return nil
}

func unionAppend(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing))
	out := make([]string, 0, len(existing)+len(added))
	for _, e := range existing {
		seen[e] = struct{}{}
		out = append(out, e)
	}
	for _, a := range added {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
