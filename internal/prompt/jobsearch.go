package prompt

import (
	"strings"

	"github.com/goodworkapp/goodwork/internal/profile"
)

func buildJobSearch(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Suche aktuelle, konkrete Stellenangebote, die zum Profil und zu den Suchkriterien passen.\n\n")

	prefs := doc.JobSearch.Preferences
	sb.WriteString("[Suchkriterien]\n")
	writeField(&sb, "Region", prefs.Region)
	writeField(&sb, "Beschäftigungsart", prefs.EmploymentType)
	writeField(&sb, "Stichworte", strings.Join(prefs.Keywords, ", "))
	sb.WriteByte('\n')

	sb.WriteString("[Weitere Profildaten]\n")
	writeProfileContext(&sb, doc)

	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Nutze die Websuche und finde bis zu 8 passende Stellen.\n")
	sb.WriteString("Antworte ausschließlich mit einem JSON-Array, ohne Markdown-Zäune, ohne weiteren Text.\n")
	sb.WriteString(`Schema je Eintrag: {"title": string, "company": string, "location": string, "snippet": string, "relevance": string, "url": string, "matchingDegree": string}` + "\n")
	sb.WriteString("Beispiel:\n")
	sb.WriteString(`[{"title": "Projektleitung Umweltbildung", "company": "Naturpark e.V.", "location": "Freiburg", "snippet": "Konzeption und Leitung von Bildungsprojekten.", "relevance": "Passt zu sozialen und unternehmerischen Interessen.", "url": "https://example.org/jobs/123", "matchingDegree": "85%"}]` + "\n")
	sb.WriteString("matchingDegree: geschätzte Passung in Prozent. relevance: ein Satz Begründung aus dem Profil.\n")
	return sb.String()
}
