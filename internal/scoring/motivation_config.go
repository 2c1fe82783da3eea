package scoring

// MotivationInstrument returns the motivation-driver questionnaire.
func MotivationInstrument() Instrument {
	return Instrument{
		ID:      "motivation",
		Label:   "Motivation",
		Neutral: NeutralValue,
		Dimensions: []Dimension{
			{
				ID: "sicherheit", Label: "Sicherheit & Stabilität", Color: "#455a64",
				Description: "Verlässliche Rahmenbedingungen, planbare Zukunft, finanzielle Sicherheit.",
				Items: []Item{
					{ID: "mot-sich-1", Label: "Ein sicherer Arbeitsplatz ist mir wichtig."},
					{ID: "mot-sich-2", Label: "Ich brauche planbare und verlässliche Strukturen."},
					{ID: "mot-sich-3", Label: "Finanzielle Stabilität gibt mir Ruhe."},
					{ID: "mot-sich-4", Label: "Ich vermeide ungern unnötige Risiken."},
				},
			},
			{
				ID: "autonomie", Label: "Autonomie & Freiheit", Color: "#26a69a",
				Description: "Selbstbestimmtes Arbeiten, eigene Entscheidungen, Gestaltungsspielraum.",
				Items: []Item{
					{ID: "mot-auto-1", Label: "Ich möchte selbst entscheiden, wie ich arbeite."},
					{ID: "mot-auto-2", Label: "Enge Vorgaben demotivieren mich."},
					{ID: "mot-auto-3", Label: "Flexible Zeiteinteilung ist mir wichtig."},
					{ID: "mot-auto-4", Label: "Ich übernehme gerne Verantwortung für meinen Bereich."},
				},
			},
			{
				ID: "sinn", Label: "Sinn & Werte", Color: "#8e24aa",
				Description: "Beitrag zu etwas Größerem, Übereinstimmung mit eigenen Werten.",
				Items: []Item{
					{ID: "mot-sinn-1", Label: "Meine Arbeit soll einen erkennbaren Nutzen stiften."},
					{ID: "mot-sinn-2", Label: "Ich möchte hinter den Zielen meines Arbeitgebers stehen können."},
					{ID: "mot-sinn-3", Label: "Gesellschaftlicher Beitrag motiviert mich mehr als Status."},
					{ID: "mot-sinn-4", Label: "Ich frage mich oft, wofür ich etwas tue."},
				},
			},
			{
				ID: "anerkennung", Label: "Anerkennung & Erfolg", Color: "#f4511e",
				Description: "Sichtbare Leistung, Wertschätzung, beruflicher Aufstieg.",
				Items: []Item{
					{ID: "mot-aner-1", Label: "Lob und Wertschätzung spornen mich an."},
					{ID: "mot-aner-2", Label: "Ich möchte mit meiner Leistung sichtbar sein."},
					{ID: "mot-aner-3", Label: "Beruflicher Aufstieg ist mir wichtig."},
					{ID: "mot-aner-4", Label: "Ich vergleiche meine Ergebnisse gerne mit anderen."},
				},
			},
			{
				ID: "entwicklung", Label: "Lernen & Entwicklung", Color: "#039be5",
				Description: "Neues lernen, wachsen, sich fachlich und persönlich weiterentwickeln.",
				Items: []Item{
					{ID: "mot-entw-1", Label: "Ich will mich ständig weiterentwickeln."},
					{ID: "mot-entw-2", Label: "Neue Themen zu lernen gibt mir Energie."},
					{ID: "mot-entw-3", Label: "Stillstand im Job macht mich unzufrieden."},
					{ID: "mot-entw-4", Label: "Ich suche aktiv nach Herausforderungen."},
				},
			},
			{
				ID: "verbundenheit", Label: "Zugehörigkeit & Miteinander", Color: "#d81b60",
				Description: "Gutes Teamklima, tragfähige Beziehungen, gemeinsames Arbeiten.",
				Items: []Item{
					{ID: "mot-verb-1", Label: "Ein gutes Team ist mir wichtiger als ein hohes Gehalt."},
					{ID: "mot-verb-2", Label: "Ich arbeite am liebsten gemeinsam mit anderen."},
					{ID: "mot-verb-3", Label: "Ich brauche ein vertrauensvolles Arbeitsklima."},
					{ID: "mot-verb-4", Label: "Kollegiale Beziehungen pflege ich aktiv."},
				},
			},
		},
	}
}
