package storage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadDocument_DefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)

	doc, err := s.LoadDocument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Valou) != 6 {
		t.Errorf("expected 6 Valou areas in default document, got %d", len(doc.Valou))
	}
	if doc.Version != 0 {
		t.Errorf("expected version 0, got %d", doc.Version)
	}
}

func TestSaveDocument_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	doc := profile.NewDocument()
	doc.Personal.Beruf = "Lehrerin"
	doc.Identity.Werte = "Fairness, Neugier"
	now := time.Now().UTC().Truncate(time.Second)
	doc = doc.WithMotivationResult(scoring.Aggregate(scoring.MotivationInstrument(), map[string]int{"mot-auto-1": 9}), now)
	area, _ := doc.Area(profile.AreaArbeit)
	area.Vorlieben = []string{"Gestaltungsfreiheit"}
	doc = doc.WithValouArea(area)

	if err := s.SaveDocument(&doc); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if doc.Version != 1 {
		t.Errorf("expected version 1 after first save, got %d", doc.Version)
	}

	loaded, err := s.LoadDocument()
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if loaded.Personal.Beruf != "Lehrerin" || loaded.Identity.Werte != "Fairness, Neugier" {
		t.Errorf("text fields did not round-trip: %+v", loaded.Personal)
	}
	if !loaded.MotivationComplete() {
		t.Error("motivation screening did not round-trip")
	}
	got, _ := loaded.Area(profile.AreaArbeit)
	if len(got.Vorlieben) != 1 || got.Vorlieben[0] != "Gestaltungsfreiheit" {
		t.Errorf("valou data did not round-trip: %+v", got)
	}
}

func TestSaveDocument_VersionConflict(t *testing.T) {
	s := openTestStore(t)

	first, _ := s.LoadDocument()
	second := first.Clone()

	if err := s.SaveDocument(&first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Second writer still holds version 0.
	err := s.SaveDocument(&second)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// After reloading, the second writer succeeds.
	reloaded, _ := s.LoadDocument()
	reloaded.Personal.Hobbys = "Klettern"
	if err := s.SaveDocument(&reloaded); err != nil {
		t.Fatalf("save after reload: %v", err)
	}
	if reloaded.Version != 2 {
		t.Errorf("expected version 2, got %d", reloaded.Version)
	}
}

func TestSaveDocument_BlobVersionMatchesColumn(t *testing.T) {
	s := openTestStore(t)

	doc, _ := s.LoadDocument()
	doc.Personal.Beruf = "Lehrerin"
	if err := s.SaveDocument(&doc); err != nil {
		t.Fatalf("first save: %v", err)
	}
	doc.Personal.Hobbys = "Klettern"
	if err := s.SaveDocument(&doc); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var data string
	var version int64
	if err := s.db.QueryRow(
		`SELECT data, version FROM profile_document WHERE key = ?`, documentKey,
	).Scan(&data, &version); err != nil {
		t.Fatalf("reading row: %v", err)
	}

	var stored profile.Document
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		t.Fatalf("unmarshalling blob: %v", err)
	}
	if stored.Version != version {
		t.Errorf("blob version %d, column version %d", stored.Version, version)
	}
	if version != 2 {
		t.Errorf("expected column version 2, got %d", version)
	}
}

func TestResetDocument(t *testing.T) {
	s := openTestStore(t)

	doc, _ := s.LoadDocument()
	doc.Personal.Beruf = "Pilotin"
	if err := s.SaveDocument(&doc); err != nil {
		t.Fatalf("saving: %v", err)
	}

	if err := s.ResetDocument(); err != nil {
		t.Fatalf("resetting: %v", err)
	}

	fresh, _ := s.LoadDocument()
	if fresh.Personal.Beruf != "" || fresh.Version != 0 {
		t.Errorf("expected fresh defaults after reset, got %+v", fresh.Personal)
	}
}

func TestReportHistory(t *testing.T) {
	s := openTestStore(t)

	for i, kind := range []string{"coaching_tips", "riasec_report", "coaching_tips"} {
		err := s.AppendReport(ReportRecord{
			ID:        string(rune('a' + i)),
			Kind:      kind,
			Content:   "## Bericht",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("appending report %d: %v", i, err)
		}
	}

	all, err := s.ListReports("", 10)
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 records, got %d", len(all))
	}

	coaching, err := s.ListReports("coaching_tips", 10)
	if err != nil {
		t.Fatalf("listing filtered: %v", err)
	}
	if len(coaching) != 2 {
		t.Errorf("expected 2 coaching records, got %d", len(coaching))
	}
	if len(coaching) == 2 && coaching[0].CreatedAt.Before(coaching[1].CreatedAt) {
		t.Error("expected newest first")
	}
}
