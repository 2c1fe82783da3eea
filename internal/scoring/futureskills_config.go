package scoring

// FutureSkillsInstrument returns the future-skills self-rating questionnaire.
func FutureSkillsInstrument() Instrument {
	return Instrument{
		ID:      "futureskills",
		Label:   "Future Skills",
		Neutral: NeutralValue,
		Dimensions: []Dimension{
			{
				ID: "digital", Label: "Digitale Kompetenz", Color: "#3949ab",
				Description: "Souveräner Umgang mit digitalen Werkzeugen, Daten und KI.",
				Items: []Item{
					{ID: "fs-dig-1", Label: "Ich arbeite mich schnell in neue digitale Tools ein."},
					{ID: "fs-dig-2", Label: "Ich kann Daten lesen und daraus Schlüsse ziehen."},
					{ID: "fs-dig-3", Label: "KI-Werkzeuge nutze ich produktiv in meiner Arbeit."},
					{ID: "fs-dig-4", Label: "Ich verstehe, wie digitale Systeme grundsätzlich funktionieren."},
				},
			},
			{
				ID: "lernen", Label: "Lernfähigkeit", Color: "#00897b",
				Description: "Selbstgesteuertes Lernen und Umlernen in kurzen Zyklen.",
				Items: []Item{
					{ID: "fs-ler-1", Label: "Ich eigne mir neues Wissen selbstständig an."},
					{ID: "fs-ler-2", Label: "Ich verlerne alte Gewohnheiten, wenn es Besseres gibt."},
					{ID: "fs-ler-3", Label: "Feedback nutze ich konsequent zum Lernen."},
					{ID: "fs-ler-4", Label: "Ich weiß, welche Lernmethoden bei mir funktionieren."},
				},
			},
			{
				ID: "kollaboration", Label: "Kollaboration", Color: "#fb8c00",
				Description: "Wirksame Zusammenarbeit über Rollen, Orte und Kulturen hinweg.",
				Items: []Item{
					{ID: "fs-kol-1", Label: "Ich arbeite gut in verteilten oder hybriden Teams."},
					{ID: "fs-kol-2", Label: "Ich kann mit sehr unterschiedlichen Menschen produktiv arbeiten."},
					{ID: "fs-kol-3", Label: "Ich teile Wissen aktiv mit anderen."},
					{ID: "fs-kol-4", Label: "Konflikte spreche ich konstruktiv an."},
				},
			},
			{
				ID: "problemloesung", Label: "Kritisches Denken & Problemlösung", Color: "#5e35b1",
				Description: "Komplexe Probleme strukturieren, Annahmen prüfen, Lösungen bewerten.",
				Items: []Item{
					{ID: "fs-pro-1", Label: "Ich zerlege komplexe Probleme in handhabbare Teile."},
					{ID: "fs-pro-2", Label: "Ich prüfe Informationen auf ihre Verlässlichkeit."},
					{ID: "fs-pro-3", Label: "Ich wäge Lösungsalternativen systematisch ab."},
					{ID: "fs-pro-4", Label: "Ich erkenne Muster und Zusammenhänge schnell."},
				},
			},
			{
				ID: "resilienz", Label: "Resilienz & Anpassungsfähigkeit", Color: "#c0ca33",
				Description: "Mit Unsicherheit, Veränderung und Rückschlägen umgehen.",
				Items: []Item{
					{ID: "fs-res-1", Label: "Veränderungen werfen mich nicht aus der Bahn."},
					{ID: "fs-res-2", Label: "Nach Rückschlägen finde ich schnell zurück."},
					{ID: "fs-res-3", Label: "Ich bleibe unter Unsicherheit handlungsfähig."},
					{ID: "fs-res-4", Label: "Ich achte auf meine eigenen Ressourcen."},
				},
			},
			{
				ID: "eigeninitiative", Label: "Eigeninitiative & Gestaltung", Color: "#00acc1",
				Description: "Chancen erkennen, Dinge anstoßen, Verantwortung übernehmen.",
				Items: []Item{
					{ID: "fs-eig-1", Label: "Ich warte nicht auf Anweisungen, wenn ich Verbesserungen sehe."},
					{ID: "fs-eig-2", Label: "Ich bringe eigene Ideen aktiv ein."},
					{ID: "fs-eig-3", Label: "Ich treibe Themen auch gegen Widerstände voran."},
					{ID: "fs-eig-4", Label: "Ich übernehme Verantwortung, ohne dass man mich darum bittet."},
				},
			},
		},
	}
}
