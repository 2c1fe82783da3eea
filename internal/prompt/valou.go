package prompt

import (
	"fmt"
	"strings"

	"github.com/goodworkapp/goodwork/internal/profile"
)

// ValouCategories maps category ids to display labels.
var ValouCategories = map[string]string{
	"vorlieben":   "Vorlieben",
	"abneigungen": "Abneigungen",
	"mustHaves":   "Must-Haves",
	"noGos":       "No-Gos",
}

func lookupArea(doc profile.Document, areaID string) (profile.ValouArea, error) {
	area, ok := doc.Area(areaID)
	if !ok {
		return profile.ValouArea{}, fmt.Errorf("%w: unknown Valou area %q", ErrInvalidParams, areaID)
	}
	return area, nil
}

func buildValouStyling(doc profile.Document, p Params) (string, error) {
	area, err := lookupArea(doc, p.AreaID)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(coachRole)
	fmt.Fprintf(&sb, "Formuliere einen einzelnen prägnanten Styling-Satz für den Lebensbereich %q: ein Satz in Ich-Form, der beschreibt, wie dieser Bereich idealerweise aussehen soll.\n\n", area.Title)
	fmt.Fprintf(&sb, "[Bereich %s]\n", area.Title)
	fmt.Fprintf(&sb, "- Bisheriger Styling-Satz: %s\n", orPlaceholder(area.StylingSatz))
	writeList(&sb, "Vorlieben", area.Vorlieben)
	writeList(&sb, "Abneigungen", area.Abneigungen)
	writeList(&sb, "Must-Haves", area.MustHaves)
	writeList(&sb, "No-Gos", area.NoGos)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\nAntworte nur mit dem Satz selbst, ohne Anführungszeichen und ohne Erläuterung.\n")
	return sb.String(), nil
}

func buildCategorySuggestions(doc profile.Document, p Params) (string, error) {
	area, err := lookupArea(doc, p.AreaID)
	if err != nil {
		return "", err
	}
	label, ok := ValouCategories[p.Category]
	if !ok {
		return "", fmt.Errorf("%w: unknown Valou category %q", ErrInvalidParams, p.Category)
	}

	existing := area.CategoryItems(p.Category)

	var sb strings.Builder
	sb.WriteString(coachRole)
	fmt.Fprintf(&sb, "Schlage 5 neue Einträge für die Kategorie %q im Lebensbereich %q vor.\n\n", label, area.Title)
	fmt.Fprintf(&sb, "[Vorhandene Einträge]\n")
	if len(existing) == 0 {
		sb.WriteString(Placeholder + "\n")
	}
	for _, e := range existing {
		fmt.Fprintf(&sb, "- %s\n", e)
	}
	sb.WriteString("\n[Weitere Profildaten]\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Antworte ausschließlich mit einem JSON-Array aus Strings, ohne Markdown-Zäune, ohne weiteren Text.\n")
	sb.WriteString("Schema: [\"string\", ...]\n")
	sb.WriteString("Beispiel: [\"Arbeiten im Grünen\", \"Klare Feierabendgrenze\"]\n")
	sb.WriteString("Keine Vorschläge, die bereits in den vorhandenen Einträgen stehen.\n")
	return sb.String(), nil
}

func buildValouBulkStyling(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Style alle sechs Valou-Lebensbereiche auf Basis des Profils.\n\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Antworte ausschließlich mit JSON, ohne Markdown-Zäune, ohne weiteren Text.\n")
	sb.WriteString("Schema: ein Objekt mit genau diesen Schlüsseln: ")
	ids := profile.ValouAreaIDs()
	sb.WriteString(strings.Join(ids, ", "))
	sb.WriteString(".\nJeder Wert: {\"stylingSatz\": string, \"vorlieben\": [string], \"abneigungen\": [string], \"mustHaves\": [string], \"noGos\": [string]}\n")
	sb.WriteString("Beispiel für einen Bereich:\n")
	sb.WriteString(`{"arbeit": {"stylingSatz": "Ich arbeite eigenverantwortlich an sinnvollen Aufgaben.", "vorlieben": ["Gestaltungsspielraum"], "abneigungen": ["Mikromanagement"], "mustHaves": ["Flexible Zeiten"], "noGos": ["Dauerüberstunden"]}}` + "\n")
	sb.WriteString("Je Liste 2 bis 4 kurze Einträge.\n")
	return sb.String()
}

func buildValouSummary(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle eine Zusammenfassung über alle Valou-Lebensbereiche.\n\n")
	writeValou(&sb, doc)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writePersonal(&sb, doc)
	sb.WriteByte('\n')
	writeIdentity(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Markdown-Struktur: '## Dein Lebensbild' (verbindende Muster über die Bereiche), '## Spannungsfelder' (wo sich Bereiche widersprechen), '## Dein nächster Schritt'.\n")
	return sb.String()
}
