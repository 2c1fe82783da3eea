// Package api exposes the coaching profile over a small authenticated REST
// surface plus an MCP server for agent access.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/goodworkapp/goodwork/internal/answer"
	"github.com/goodworkapp/goodwork/internal/export"
	"github.com/goodworkapp/goodwork/internal/ingest"
	"github.com/goodworkapp/goodwork/internal/markdown"
	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/prompt"
	"github.com/goodworkapp/goodwork/internal/report"
	"github.com/goodworkapp/goodwork/internal/scoring"
	"github.com/goodworkapp/goodwork/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB
const maxResumeBodySize = 10 << 20 // 10MB

type Deps struct {
	Store     *storage.Store
	Reports   *report.Service
	Token     string
	ExportDir string
}

func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(deps.Token))

		r.Get("/profile", handleGetProfile(deps))
		r.Patch("/profile", handlePatchProfile(deps))
		r.Post("/profile/reset", handleResetProfile(deps))
		r.Post("/profile/resume", handleResume(deps))

		r.Post("/screenings/{instrument}", handleScreening(deps))

		r.Put("/valou/{area}", handlePutValouArea(deps))
		r.Post("/valou/styling", handleBulkStyling(deps))
		r.Post("/valou/{area}/styling", handleStylingSentence(deps))
		r.Post("/valou/{area}/suggestions", handleCategorySuggestions(deps))

		r.Post("/reports/{kind}", handleGenerateReport(deps))
		r.Post("/reports", handleGenerateAll(deps))
		r.Get("/reports/history", handleReportHistory(deps))
		r.Get("/reports/{kind}/render", handleRenderReport(deps))
		r.Post("/reports/{kind}/export", handleExportReport(deps))

		r.Post("/jobs/search", handleJobSearch(deps))

		r.Get("/logbook", handleListLogbook(deps))
		r.Post("/logbook", handleAddLogbook(deps))
		r.Delete("/logbook/{id}", handleDeleteLogbook(deps))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleGetProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to load profile: %v", err)
			return
		}
		writeJSON(w, doc)
	}
}

func handlePatchProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		doc, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			cp := d.Clone()
			for key, value := range fields {
				if err := cp.SetField(key, value); err != nil {
					return d, err
				}
			}
			return cp, nil
		})
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}
		writeJSON(w, doc)
	}
}

func handleResetProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("confirm") != "true" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "reset requires confirm=true")
			return
		}
		if err := deps.Store.ResetDocument(); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to reset profile: %v", err)
			return
		}
		writeJSON(w, map[string]string{"status": "reset"})
	}
}

func handleResume(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxResumeBodySize)
		defer r.Body.Close()

		data, err := io.ReadAll(r.Body)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "reading upload: %v", err)
			return
		}

		var text string
		switch ct := r.Header.Get("Content-Type"); {
		case strings.HasPrefix(ct, "application/pdf"):
			text, err = ingest.ExtractPDF(data)
		case strings.HasPrefix(ct, "text/html"):
			text, err = ingest.ExtractHTML(data)
		default:
			httpError(w, http.StatusUnsupportedMediaType, "invalid_request_error", "unsupported content type %q", ct)
			return
		}
		if errors.Is(err, ingest.ErrNoText) {
			httpError(w, http.StatusUnprocessableEntity, "invalid_request_error", "document contains no extractable text")
			return
		}
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "extracting text: %v", err)
			return
		}
		writeJSON(w, map[string]string{"text": text})
	}
}

type screeningRequest struct {
	Ratings map[string]int `json:"ratings"`
}

func handleScreening(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instrument := chi.URLParam(r, "instrument")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var req screeningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if len(req.Ratings) == 0 {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "ratings is required")
			return
		}

		now := time.Now().UTC()
		doc, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			switch instrument {
			case "riasec":
				scores := scoring.RiasecScores(req.Ratings)
				return d.WithRiasecResult(scores, scoring.DeriveHolland(scores), now), nil
			case "bigfive":
				return d.WithBigFiveResult(scoring.AggregateBigFive(req.Ratings), now), nil
			case "motivation":
				return d.WithMotivationResult(scoring.Aggregate(scoring.MotivationInstrument(), req.Ratings), now), nil
			case "futureskills":
				return d.WithFutureSkillsResult(scoring.Aggregate(scoring.FutureSkillsInstrument(), req.Ratings), now), nil
			default:
				return d, errUnknownInstrument
			}
		})
		if errors.Is(err, errUnknownInstrument) {
			httpError(w, http.StatusNotFound, "not_found", "unknown instrument %q", instrument)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "saving screening: %v", err)
			return
		}
		writeJSON(w, doc)
	}
}

var errUnknownInstrument = errors.New("unknown instrument")

type valouAreaRequest struct {
	StylingSatz string   `json:"stylingSatz"`
	Vorlieben   []string `json:"vorlieben"`
	Abneigungen []string `json:"abneigungen"`
	MustHaves   []string `json:"mustHaves"`
	NoGos       []string `json:"noGos"`
}

func handlePutValouArea(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID := chi.URLParam(r, "area")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var req valouAreaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		doc, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			area, ok := d.Area(areaID)
			if !ok {
				return d, errUnknownArea
			}
			area.StylingSatz = req.StylingSatz
			area.Vorlieben = req.Vorlieben
			area.Abneigungen = req.Abneigungen
			area.MustHaves = req.MustHaves
			area.NoGos = req.NoGos
			return d.WithValouArea(area), nil
		})
		if errors.Is(err, errUnknownArea) {
			httpError(w, http.StatusNotFound, "not_found", "unknown Valou area %q", areaID)
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "saving area: %v", err)
			return
		}
		writeJSON(w, doc)
	}
}

var errUnknownArea = errors.New("unknown Valou area")

func handleGenerateReport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := prompt.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			httpError(w, http.StatusNotFound, "not_found", "%v", err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var p prompt.Params
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil && err != io.EOF {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
				return
			}
		}

		content, err := deps.Reports.GenerateReport(r.Context(), kind, p)
		writeReportResult(w, kind, content, err)
	}
}

func handleGenerateAll(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := deps.Reports.GenerateAll(r.Context())
		var pre *report.PreconditionError
		switch {
		case errors.As(err, &pre):
			httpError(w, http.StatusConflict, "precondition_failed", "%v", pre)
		case errors.Is(err, report.ErrNoGateway):
			httpError(w, http.StatusServiceUnavailable, "api_error", "no Gemini API key configured")
		case err != nil:
			httpError(w, http.StatusBadGateway, "api_error", "generating reports: %v", err)
		default:
			writeJSON(w, map[string]string{"status": "generated"})
		}
	}
}

// writeReportResult maps a report outcome to HTTP. A model-side error string
// is stored content, not a transport failure, so it still answers 200.
func writeReportResult(w http.ResponseWriter, kind prompt.Kind, content string, err error) {
	var pre *report.PreconditionError
	var appErr *answer.AppError
	switch {
	case errors.As(err, &pre):
		httpError(w, http.StatusConflict, "precondition_failed", "%v", pre)
	case errors.Is(err, report.ErrNoGateway):
		if content == "" {
			content = "no Gemini API key configured"
		}
		httpError(w, http.StatusServiceUnavailable, "api_error", "%s", content)
	case errors.As(err, &appErr):
		writeJSON(w, map[string]any{"kind": kind, "content": content, "failed": true})
	case errors.Is(err, prompt.ErrInvalidParams):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case err != nil:
		httpError(w, http.StatusBadGateway, "api_error", "generating report: %v", err)
	default:
		writeJSON(w, map[string]any{"kind": kind, "content": content})
	}
}

func handleReportHistory(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("kind")
		limit := parseIntParam(r, "limit", 20, 100)

		records, err := deps.Store.ListReports(kind, limit)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "listing history: %v", err)
			return
		}
		if records == nil {
			records = []storage.ReportRecord{}
		}
		writeJSON(w, records)
	}
}

func handleRenderReport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := prompt.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			httpError(w, http.StatusNotFound, "not_found", "%v", err)
			return
		}
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to load profile: %v", err)
			return
		}
		content, ok := storedReport(doc, kind)
		if !ok || content == "" {
			httpError(w, http.StatusNotFound, "not_found", "no stored report of kind %q", kind)
			return
		}
		writeJSON(w, map[string]any{"kind": kind, "nodes": markdown.Parse(content)})
	}
}

func handleExportReport(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := prompt.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			httpError(w, http.StatusNotFound, "not_found", "%v", err)
			return
		}
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to load profile: %v", err)
			return
		}
		content, ok := storedReport(doc, kind)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found", "no stored report of kind %q", kind)
			return
		}
		path, written, err := exportReport(deps.ExportDir, kind, content)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "exporting report: %v", err)
			return
		}
		if !written {
			httpError(w, http.StatusUnprocessableEntity, "invalid_request_error", "report %q has no exportable content", kind)
			return
		}
		writeJSON(w, map[string]string{"path": path})
	}
}

type jobSearchRequest struct {
	Region         string   `json:"region"`
	EmploymentType string   `json:"employmentType"`
	Keywords       []string `json:"keywords"`
}

func handleJobSearch(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var req jobSearchRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
				return
			}
		}

		matches, err := deps.Reports.SearchJobs(r.Context(), profile.JobPreferences{
			Region:         req.Region,
			EmploymentType: req.EmploymentType,
			Keywords:       req.Keywords,
		})
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, matches)
	}
}

type suggestionRequest struct {
	Category string `json:"category"`
}

func handleCategorySuggestions(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID := chi.URLParam(r, "area")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var req suggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		items, err := deps.Reports.SuggestCategoryItems(r.Context(), areaID, req.Category)
		if err != nil {
			writeActionError(w, err)
			return
		}
		if items == nil {
			items = []string{}
		}
		writeJSON(w, map[string]any{"suggestions": items})
	}
}

func handleStylingSentence(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID := chi.URLParam(r, "area")
		sentence, err := deps.Reports.SuggestStylingSentence(r.Context(), areaID)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, map[string]string{"stylingSatz": sentence})
	}
}

func handleBulkStyling(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suggestions, err := deps.Reports.SuggestAllValou(r.Context())
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, suggestions)
	}
}

// writeActionError maps AI-action failures that are not report content.
func writeActionError(w http.ResponseWriter, err error) {
	var pre *report.PreconditionError
	var appErr *answer.AppError
	switch {
	case errors.As(err, &pre):
		httpError(w, http.StatusConflict, "precondition_failed", "%v", pre)
	case errors.Is(err, report.ErrNoGateway):
		httpError(w, http.StatusServiceUnavailable, "api_error", "no Gemini API key configured")
	case errors.As(err, &appErr):
		httpError(w, http.StatusUnprocessableEntity, "model_error", "%s", appErr.Message)
	case errors.Is(err, prompt.ErrInvalidParams):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case errors.Is(err, answer.ErrInvalidJSON), errors.Is(err, answer.ErrEmptyResponse):
		httpError(w, http.StatusBadGateway, "api_error", "unusable model response: %v", err)
	default:
		httpError(w, http.StatusBadGateway, "api_error", "%v", err)
	}
}

type logbookRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func handleListLogbook(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to load profile: %v", err)
			return
		}
		entries := doc.Logbook
		if entries == nil {
			entries = []profile.LogbookEntry{}
		}
		writeJSON(w, entries)
	}
}

func handleAddLogbook(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var req logbookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "text is required")
			return
		}

		entry := profile.LogbookEntry{
			ID:        uuid.New().String(),
			CreatedAt: time.Now().UTC(),
			Title:     req.Title,
			Text:      req.Text,
		}
		if _, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			return d.WithLogbookEntry(entry), nil
		}); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "saving entry: %v", err)
			return
		}
		writeJSON(w, entry)
	}
}

func handleDeleteLogbook(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		found := false
		if _, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			for _, e := range d.Logbook {
				if e.ID == id {
					found = true
				}
			}
			return d.WithoutLogbookEntry(id), nil
		}); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "deleting entry: %v", err)
			return
		}
		if !found {
			httpError(w, http.StatusNotFound, "not_found", "logbook entry not found")
			return
		}
		writeJSON(w, map[string]string{"status": "deleted"})
	}
}

// mutateDocument loads, transforms, and saves the document, retrying once
// when a concurrent writer moved the version.
func mutateDocument(store *storage.Store, mutate func(profile.Document) (profile.Document, error)) (profile.Document, error) {
	for attempt := 0; ; attempt++ {
		doc, err := store.LoadDocument()
		if err != nil {
			return profile.Document{}, err
		}
		next, err := mutate(doc)
		if err != nil {
			return profile.Document{}, err
		}
		err = store.SaveDocument(&next)
		if errors.Is(err, storage.ErrVersionConflict) && attempt == 0 {
			continue
		}
		if err != nil {
			return profile.Document{}, err
		}
		return next, nil
	}
}

func storedReport(doc profile.Document, kind prompt.Kind) (string, bool) {
	switch kind {
	case prompt.KindCoachingTips:
		return doc.Reports.CoachingTips, true
	case prompt.KindRiasecReport:
		return doc.Riasec.Report, true
	case prompt.KindPersonalityReport:
		return doc.BigFive.Report, true
	case prompt.KindMotivationReport:
		return doc.Motivation.Report, true
	case prompt.KindFutureSkillsReport:
		return doc.FutureSkills.Report, true
	case prompt.KindIdentityReport:
		return doc.Reports.Identity, true
	case prompt.KindDecisionMatrix:
		return doc.Reports.DecisionMatrix, true
	case prompt.KindCultureMatch:
		return doc.Reports.CultureMatch, true
	case prompt.KindValouSummary:
		return doc.Reports.ValouSummary, true
	default:
		return "", false
	}
}

func exportReport(dir string, kind prompt.Kind, content string) (string, bool, error) {
	path := filepath.Join(dir, string(kind)+".md")
	written, err := export.Text(content, path)
	return path, written, err
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
