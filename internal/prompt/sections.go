package prompt

import (
	"fmt"
	"strings"

	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/scoring"
)

// Placeholder is substituted for blank free-text fields so every builder
// serializes every field it documents, present or not.
const Placeholder = "keine Angabe"

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}

func writeField(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "- %s: %s\n", label, orPlaceholder(value))
}

func writePersonal(sb *strings.Builder, doc profile.Document) {
	sb.WriteString("[Profil]\n")
	writeField(sb, "Beruf", doc.Personal.Beruf)
	writeField(sb, "Berufserfahrung", doc.Personal.Berufserfahrung)
	writeField(sb, "Ausbildung", doc.Personal.Ausbildung)
	writeField(sb, "Hobbys", doc.Personal.Hobbys)
	writeField(sb, "Lebensmotto", doc.Personal.Lebensmotto)
}

func writeIdentity(sb *strings.Builder, doc profile.Document) {
	sb.WriteString("[Identität]\n")
	writeField(sb, "Stärken", doc.Identity.Staerken)
	writeField(sb, "Schwächen", doc.Identity.Schwaechen)
	writeField(sb, "Werte", doc.Identity.Werte)
	writeField(sb, "Interessen", doc.Identity.Interessen)
	writeField(sb, "Ziele", doc.Identity.Ziele)
}

func writeRiasec(sb *strings.Builder, doc profile.Document) {
	if len(doc.Riasec.Scores) == 0 {
		return
	}
	sb.WriteString("[Interessen (RIASEC)]\n")
	for _, s := range doc.Riasec.Scores {
		fmt.Fprintf(sb, "- %s (%s): %.1f/%d\n", s.Label, s.Area, s.Value, scoring.ScaleMax)
	}
	if doc.Riasec.Holland.Code != "" {
		fmt.Fprintf(sb, "- Holland-Code: %s (%s)\n", doc.Riasec.Holland.Code, doc.TypeLabel())
	}
}

func writeBigFive(sb *strings.Builder, doc profile.Document) {
	if len(doc.BigFive.Scores) == 0 {
		return
	}
	sb.WriteString("[Persönlichkeit (Big Five)]\n")
	for _, s := range doc.BigFive.Scores {
		dom := s.DominantPole()
		fmt.Fprintf(sb, "- %s: %.1f/%d, eher %s\n", s.Label, s.Score, scoring.ScaleMax, dom.PoleLabel)
	}
}

func writeDimensionScores(sb *strings.Builder, title string, scores []scoring.DimensionScore) {
	if len(scores) == 0 {
		return
	}
	fmt.Fprintf(sb, "[%s]\n", title)
	for _, s := range scores {
		fmt.Fprintf(sb, "- %s: %.1f/%d\n", s.Label, s.AverageScore, scoring.ScaleMax)
	}
}

func writeValou(sb *strings.Builder, doc profile.Document) {
	if doc.ValouEffectivelyEmpty() {
		return
	}
	sb.WriteString("[Valou-Lebensbereiche]\n")
	for _, a := range doc.Valou {
		if a.Empty() {
			continue
		}
		fmt.Fprintf(sb, "%s:\n", a.Title)
		fmt.Fprintf(sb, "  Styling-Satz: %s\n", orPlaceholder(a.StylingSatz))
		writeList(sb, "Vorlieben", a.Vorlieben)
		writeList(sb, "Abneigungen", a.Abneigungen)
		writeList(sb, "Must-Haves", a.MustHaves)
		writeList(sb, "No-Gos", a.NoGos)
	}
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "  %s: %s\n", label, Placeholder)
		return
	}
	fmt.Fprintf(sb, "  %s: %s\n", label, strings.Join(items, "; "))
}

// writeProfileContext serializes every data source present on the document.
// Builders that document "weitere Profildaten" call this so no present
// source is ever omitted.
func writeProfileContext(sb *strings.Builder, doc profile.Document) {
	writePersonal(sb, doc)
	sb.WriteByte('\n')
	writeIdentity(sb, doc)
	sb.WriteByte('\n')
	writeRiasec(sb, doc)
	writeBigFive(sb, doc)
	writeDimensionScores(sb, "Motivation", doc.Motivation.Scores)
	writeDimensionScores(sb, "Future Skills", doc.FutureSkills.Scores)
	writeValou(sb, doc)
}
