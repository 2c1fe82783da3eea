package prompt

import (
	"fmt"
	"strings"

	"github.com/goodworkapp/goodwork/internal/profile"
)

const coachRole = "Du bist ein erfahrener Karriere-Coach für berufliche Selbstreflexion und Neuorientierung. Antworte auf Deutsch, wertschätzend und konkret.\n\n"

func buildCoachingTips(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle individuelle Coaching-Tipps auf Basis der folgenden Profildaten.\n\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Gib 5 bis 7 konkrete, umsetzbare Tipps als Markdown.\n")
	sb.WriteString("Struktur: eine Überschrift '## Deine Coaching-Tipps', danach je Tipp eine '###'-Überschrift mit 2-4 Sätzen Begründung und einem ersten Schritt.\n")
	return sb.String()
}

func buildRiasecReport(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle einen Interessen-Report nach dem RIASEC-Modell von Holland.\n\n")
	writeRiasec(&sb, doc)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writePersonal(&sb, doc)
	sb.WriteByte('\n')
	writeIdentity(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Struktur als Markdown: '## Dein Interessenprofil' (Deutung der Hierarchie), ")
	sb.WriteString("'## Dein Holland-Code' (was der Code bedeutet, benenne einen prägnanten Typ-Namen fett, z.B. **Gestaltender Macher-Typ**), ")
	sb.WriteString("'## Passende Tätigkeitsfelder' (5 Felder mit Begründung).\n")
	return sb.String()
}

func buildPersonalityReport(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle einen Persönlichkeits-Report nach dem Big-Five-Modell.\n\n")
	writeBigFive(&sb, doc)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writePersonal(&sb, doc)
	sb.WriteByte('\n')
	writeIdentity(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Deute jede Dimension einzeln ('### <Dimension>'), beschreibe Stärken wie Schattenseiten des dominanten Pols und schließe mit '## Was das für deinen Berufsalltag bedeutet'.\n")
	return sb.String()
}

func buildMotivationReport(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle einen Report über die beruflichen Motivationstreiber.\n\n")
	writeDimensionScores(&sb, "Motivation", doc.Motivation.Scores)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writePersonal(&sb, doc)
	sb.WriteByte('\n')
	writeIdentity(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Markdown-Struktur: '## Deine stärksten Treiber' (die obersten zwei, mit Alltagsbeispielen), '## Deine schwächsten Treiber', '## Konsequenzen für die Jobwahl'.\n")
	return sb.String()
}

func buildFutureSkillsReport(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle einen Report über die Future-Skills-Selbsteinschätzung.\n\n")
	writeDimensionScores(&sb, "Future Skills", doc.FutureSkills.Scores)
	sb.WriteString("\n[Weitere Profildaten]\n")
	writePersonal(&sb, doc)
	sb.WriteByte('\n')
	writeIdentity(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Markdown-Struktur: '## Deine ausgeprägten Future Skills', '## Deine Entwicklungsfelder' (je Feld ein konkreter Lernvorschlag), '## Ausblick'.\n")
	return sb.String()
}

// buildIdentityReport branches between the compact synthesis (all four
// screenings complete) and the broader exploration prompt (partial data).
func buildIdentityReport(doc profile.Document) string {
	var sb strings.Builder
	sb.WriteString(coachRole)
	if doc.AllScreeningsComplete() {
		sb.WriteString("Alle vier Screenings liegen vor. Erstelle einen verdichteten Identitäts-Report, der die Ergebnisse zu einem stimmigen Gesamtbild verbindet.\n\n")
	} else {
		sb.WriteString("Es liegen erst Teildaten vor. Erstelle einen ausführlichen Identitäts-Report, der die vorhandenen Daten deutet, Lücken benennt und Hypothesen vorsichtig formuliert.\n\n")
	}
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Markdown-Struktur: '## Wer du bist' (Synthese), '## Dein Typ' mit einem prägnanten Typ-Namen fett hervorgehoben (z.B. **Analytischer Brückenbauer-Typ**), ")
	sb.WriteString("'## Deine roten Fäden', '## Offene Fragen an dich'.\n")
	return sb.String()
}

func buildDecisionMatrix(doc profile.Document, p Params) (string, error) {
	if strings.TrimSpace(p.DecisionQuestion) == "" || len(p.DecisionOptions) < 2 {
		return "", fmt.Errorf("%w: decision matrix needs a question and at least two options", ErrInvalidParams)
	}
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Erstelle eine Entscheidungsmatrix für die folgende berufliche Entscheidung.\n\n")
	fmt.Fprintf(&sb, "[Entscheidungsfrage]\n%s\n\n[Optionen]\n", p.DecisionQuestion)
	for i, opt := range p.DecisionOptions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, opt)
	}
	sb.WriteString("\n[Weitere Profildaten]\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Leite aus dem Profil 4-6 gewichtete Kriterien ab. Gib als Markdown aus: '## Kriterien' (mit Gewichtung und Begründung), ")
	sb.WriteString("'## Matrix' (Markdown-Tabelle: Kriterien × Optionen, Bewertung 1-10), '## Empfehlung' (mit der wichtigsten Unsicherheit).\n")
	return sb.String(), nil
}

func buildCultureMatch(doc profile.Document, p Params) (string, error) {
	if strings.TrimSpace(p.CompanyCulture) == "" && strings.TrimSpace(p.CompanyName) == "" {
		return "", fmt.Errorf("%w: culture match needs a company name or culture description", ErrInvalidParams)
	}
	var sb strings.Builder
	sb.WriteString(coachRole)
	sb.WriteString("Analysiere, wie gut die Unternehmenskultur zum Profil passt.\n\n")
	fmt.Fprintf(&sb, "[Unternehmen]\n- Name: %s\n- Kulturbeschreibung: %s\n\n", orPlaceholder(p.CompanyName), orPlaceholder(p.CompanyCulture))
	sb.WriteString("[Weitere Profildaten]\n")
	writeProfileContext(&sb, doc)
	sb.WriteString("\n[Aufgabe]\n")
	sb.WriteString("Markdown-Struktur: '## Passung' (Gesamteinschätzung mit Prozentwert), '## Was gut passt', '## Reibungspunkte', '## Fragen fürs Gespräch'.\n")
	return sb.String(), nil
}
