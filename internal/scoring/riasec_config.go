package scoring

// RiasecInstrument returns the 42-item interest questionnaire: seven
// statements per Holland area, rated 1 ("trifft gar nicht zu") to 10
// ("trifft voll zu").
func RiasecInstrument() Instrument {
	return Instrument{
		ID:      "riasec",
		Label:   "Interessen (RIASEC)",
		Neutral: NeutralValue,
		Dimensions: []Dimension{
			{
				ID: "R", Label: "Praktisch-technisch", Color: "#8d6e63",
				Description: "Handwerkliches Arbeiten, Technik, Maschinen und greifbare Ergebnisse.",
				Items: []Item{
					{ID: "R1", Label: "Ich repariere gerne Dinge mit meinen Händen."},
					{ID: "R2", Label: "Mit Werkzeugen oder Maschinen zu arbeiten macht mir Freude."},
					{ID: "R3", Label: "Ich bin gerne draußen körperlich aktiv."},
					{ID: "R4", Label: "Technische Geräte auseinanderzunehmen reizt mich."},
					{ID: "R5", Label: "Ich baue oder konstruiere gerne etwas Konkretes."},
					{ID: "R6", Label: "Praktische Probleme löse ich lieber als theoretische."},
					{ID: "R7", Label: "Ich arbeite gerne mit Material wie Holz, Metall oder Erde."},
				},
			},
			{
				ID: "I", Label: "Forschend-intellektuell", Color: "#5c6bc0",
				Description: "Analysieren, Forschen, komplexe Zusammenhänge verstehen.",
				Items: []Item{
					{ID: "I1", Label: "Ich gehe Dingen gerne auf den Grund."},
					{ID: "I2", Label: "Wissenschaftliche Fragestellungen faszinieren mich."},
					{ID: "I3", Label: "Ich löse gerne knifflige Denkaufgaben."},
					{ID: "I4", Label: "Daten und Fakten zu analysieren liegt mir."},
					{ID: "I5", Label: "Ich lese gerne über neue Forschungsergebnisse."},
					{ID: "I6", Label: "Ich stelle Annahmen gerne in Frage und prüfe sie."},
					{ID: "I7", Label: "Komplexe Systeme zu verstehen motiviert mich."},
				},
			},
			{
				ID: "A", Label: "Künstlerisch-kreativ", Color: "#ab47bc",
				Description: "Gestalten, Ausdruck, unkonventionelle Ideen und Ästhetik.",
				Items: []Item{
					{ID: "A1", Label: "Ich gestalte gerne Dinge nach eigenen Ideen."},
					{ID: "A2", Label: "Musik, Kunst oder Literatur sind mir wichtig."},
					{ID: "A3", Label: "Ich finde oft ungewöhnliche Lösungen."},
					{ID: "A4", Label: "Ich schreibe, zeichne oder musiziere gerne."},
					{ID: "A5", Label: "Feste Regeln engen mich eher ein."},
					{ID: "A6", Label: "Ich experimentiere gerne mit neuen Ausdrucksformen."},
					{ID: "A7", Label: "Ästhetik und Gestaltung fallen mir sofort auf."},
				},
			},
			{
				ID: "S", Label: "Sozial", Color: "#ef5350",
				Description: "Helfen, Beraten, Lehren und mit Menschen arbeiten.",
				Items: []Item{
					{ID: "S1", Label: "Ich helfe anderen gerne bei ihren Problemen."},
					{ID: "S2", Label: "Ich kann gut zuhören."},
					{ID: "S3", Label: "Anderen etwas beizubringen macht mir Freude."},
					{ID: "S4", Label: "Ich kümmere mich gerne um Menschen."},
					{ID: "S5", Label: "Teamarbeit liegt mir mehr als Einzelarbeit."},
					{ID: "S6", Label: "Ich vermittle gerne bei Konflikten."},
					{ID: "S7", Label: "Das Wohlbefinden anderer ist mir wichtig."},
				},
			},
			{
				ID: "E", Label: "Unternehmerisch", Color: "#ffa726",
				Description: "Führen, Überzeugen, Verhandeln und Verantwortung übernehmen.",
				Items: []Item{
					{ID: "E1", Label: "Ich übernehme gerne die Führung in einer Gruppe."},
					{ID: "E2", Label: "Andere von meinen Ideen zu überzeugen fällt mir leicht."},
					{ID: "E3", Label: "Ich verhandle gerne."},
					{ID: "E4", Label: "Ich treffe gerne Entscheidungen."},
					{ID: "E5", Label: "Wettbewerb spornt mich an."},
					{ID: "E6", Label: "Ich würde gerne ein eigenes Projekt oder Unternehmen aufbauen."},
					{ID: "E7", Label: "Ich präsentiere gerne vor anderen."},
				},
			},
			{
				ID: "C", Label: "Ordnend-verwaltend", Color: "#66bb6a",
				Description: "Strukturieren, Organisieren, sorgfältiges und genaues Arbeiten.",
				Items: []Item{
					{ID: "C1", Label: "Ich arbeite gerne nach klaren Abläufen."},
					{ID: "C2", Label: "Ordnung und Struktur sind mir wichtig."},
					{ID: "C3", Label: "Ich erledige Aufgaben gewissenhaft und genau."},
					{ID: "C4", Label: "Listen und Pläne helfen mir beim Arbeiten."},
					{ID: "C5", Label: "Ich behalte gerne den Überblick über Details."},
					{ID: "C6", Label: "Verwaltende Tätigkeiten schrecken mich nicht ab."},
					{ID: "C7", Label: "Ich halte Termine und Fristen zuverlässig ein."},
				},
			},
		},
	}
}
