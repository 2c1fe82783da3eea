package profile

import (
	"time"

	"github.com/goodworkapp/goodwork/internal/scoring"
)

// Clone returns a structural copy sharing no slices with the receiver.
func (d Document) Clone() Document {
	cp := d
	cp.Riasec.Scores = cloneSlice(d.Riasec.Scores)
	cp.Riasec.Holland.Hierarchy = cloneSlice(d.Riasec.Holland.Hierarchy)
	cp.BigFive.Scores = cloneBigFive(d.BigFive.Scores)
	cp.Motivation.Scores = cloneDimensions(d.Motivation.Scores)
	cp.FutureSkills.Scores = cloneDimensions(d.FutureSkills.Scores)
	cp.Valou = cloneValou(d.Valou)
	cp.JobSearch.Preferences.Keywords = cloneSlice(d.JobSearch.Preferences.Keywords)
	cp.JobSearch.Matches = cloneSlice(d.JobSearch.Matches)
	cp.Logbook = cloneSlice(d.Logbook)
	return cp
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneDimensions(in []scoring.DimensionScore) []scoring.DimensionScore {
	if in == nil {
		return nil
	}
	out := make([]scoring.DimensionScore, len(in))
	for i, d := range in {
		d.Items = cloneSlice(d.Items)
		out[i] = d
	}
	return out
}

func cloneBigFive(in []scoring.BigFiveDimensionScore) []scoring.BigFiveDimensionScore {
	if in == nil {
		return nil
	}
	out := make([]scoring.BigFiveDimensionScore, len(in))
	for i, d := range in {
		d.Traits = cloneSlice(d.Traits)
		out[i] = d
	}
	return out
}

func cloneValou(in []ValouArea) []ValouArea {
	if in == nil {
		return nil
	}
	out := make([]ValouArea, len(in))
	for i, a := range in {
		a.Vorlieben = cloneSlice(a.Vorlieben)
		a.Abneigungen = cloneSlice(a.Abneigungen)
		a.MustHaves = cloneSlice(a.MustHaves)
		a.NoGos = cloneSlice(a.NoGos)
		out[i] = a
	}
	return out
}

// WithRiasecResult records a completed interest screening.
func (d Document) WithRiasecResult(scores []scoring.AreaScore, holland scoring.HollandResult, now time.Time) Document {
	cp := d.Clone()
	cp.Riasec.Scores = scores
	cp.Riasec.Holland = holland
	cp.Riasec.LastRun = &now
	return cp
}

// WithBigFiveResult records a completed personality screening.
func (d Document) WithBigFiveResult(scores []scoring.BigFiveDimensionScore, now time.Time) Document {
	cp := d.Clone()
	cp.BigFive.Scores = scores
	cp.BigFive.LastRun = &now
	return cp
}

// WithMotivationResult records a completed motivation screening.
func (d Document) WithMotivationResult(scores []scoring.DimensionScore, now time.Time) Document {
	cp := d.Clone()
	cp.Motivation.Scores = scores
	cp.Motivation.LastRun = &now
	return cp
}

// WithFutureSkillsResult records a completed future-skills screening.
func (d Document) WithFutureSkillsResult(scores []scoring.DimensionScore, now time.Time) Document {
	cp := d.Clone()
	cp.FutureSkills.Scores = scores
	cp.FutureSkills.LastRun = &now
	return cp
}

// WithValouArea replaces one area by id. Unknown ids are ignored.
func (d Document) WithValouArea(area ValouArea) Document {
	cp := d.Clone()
	for i := range cp.Valou {
		if cp.Valou[i].ID == area.ID {
			cp.Valou[i] = area
		}
	}
	return cp
}

// WithLogbookEntry appends an entry.
func (d Document) WithLogbookEntry(e LogbookEntry) Document {
	cp := d.Clone()
	cp.Logbook = append(cp.Logbook, e)
	return cp
}

// WithoutLogbookEntry removes an entry by id.
func (d Document) WithoutLogbookEntry(id string) Document {
	cp := d.Clone()
	out := cp.Logbook[:0]
	for _, e := range cp.Logbook {
		if e.ID != id {
			out = append(out, e)
		}
	}
	cp.Logbook = out
	return cp
}
