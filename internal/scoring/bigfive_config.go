package scoring

type bigFiveDimensionMeta struct {
	Label         string
	Description   string
	Color         string
	PositiveLabel string
	PositiveColor string
	NegativeLabel string
	NegativeColor string
}

var bigFiveMeta = map[string]bigFiveDimensionMeta{
	"O": {
		Label:         "Offenheit",
		Description:   "Aufgeschlossenheit für neue Erfahrungen, Ideen und Eindrücke.",
		Color:         "#7e57c2",
		PositiveLabel: "offen für Neues",
		PositiveColor: "#7e57c2",
		NegativeLabel: "bewahrend",
		NegativeColor: "#b39ddb",
	},
	"C": {
		Label:         "Gewissenhaftigkeit",
		Description:   "Sorgfalt, Zuverlässigkeit und zielgerichtetes Handeln.",
		Color:         "#42a5f5",
		PositiveLabel: "strukturiert",
		PositiveColor: "#42a5f5",
		NegativeLabel: "flexibel-spontan",
		NegativeColor: "#90caf9",
	},
	"E": {
		Label:         "Extraversion",
		Description:   "Geselligkeit, Aktivität und Energie im Kontakt mit anderen.",
		Color:         "#ffb300",
		PositiveLabel: "kontaktfreudig",
		PositiveColor: "#ffb300",
		NegativeLabel: "zurückhaltend",
		NegativeColor: "#ffe082",
	},
	"A": {
		Label:         "Verträglichkeit",
		Description:   "Kooperationsbereitschaft, Empathie und Vertrauen.",
		Color:         "#66bb6a",
		PositiveLabel: "kooperativ",
		PositiveColor: "#66bb6a",
		NegativeLabel: "wettbewerbsorientiert",
		NegativeColor: "#a5d6a7",
	},
	"N": {
		Label:         "Emotionale Stabilität",
		Description:   "Umgang mit Belastung, Sorgen und emotionalen Schwankungen.",
		Color:         "#ef5350",
		PositiveLabel: "empfindsam",
		PositiveColor: "#ef5350",
		NegativeLabel: "gelassen",
		NegativeColor: "#ef9a9a",
	},
}

// bigFiveTraits is the adjective slider configuration: three adjectives per
// pole per dimension. Negative-pole adjectives are reflected onto the
// positive axis during aggregation.
var bigFiveTraits = []Trait{
	{ID: "O1", Adjective: "fantasievoll", Dimension: "O", Pole: PolePositive},
	{ID: "O2", Adjective: "neugierig", Dimension: "O", Pole: PolePositive},
	{ID: "O3", Adjective: "experimentierfreudig", Dimension: "O", Pole: PolePositive},
	{ID: "O4", Adjective: "traditionsbewusst", Dimension: "O", Pole: PoleNegative},
	{ID: "O5", Adjective: "routineliebend", Dimension: "O", Pole: PoleNegative},
	{ID: "O6", Adjective: "bodenständig", Dimension: "O", Pole: PoleNegative},

	{ID: "C1", Adjective: "organisiert", Dimension: "C", Pole: PolePositive},
	{ID: "C2", Adjective: "gründlich", Dimension: "C", Pole: PolePositive},
	{ID: "C3", Adjective: "zielstrebig", Dimension: "C", Pole: PolePositive},
	{ID: "C4", Adjective: "spontan", Dimension: "C", Pole: PoleNegative},
	{ID: "C5", Adjective: "unbekümmert", Dimension: "C", Pole: PoleNegative},
	{ID: "C6", Adjective: "sprunghaft", Dimension: "C", Pole: PoleNegative},

	{ID: "E1", Adjective: "gesellig", Dimension: "E", Pole: PolePositive},
	{ID: "E2", Adjective: "gesprächig", Dimension: "E", Pole: PolePositive},
	{ID: "E3", Adjective: "energiegeladen", Dimension: "E", Pole: PolePositive},
	{ID: "E4", Adjective: "zurückhaltend", Dimension: "E", Pole: PoleNegative},
	{ID: "E5", Adjective: "ruhebedürftig", Dimension: "E", Pole: PoleNegative},
	{ID: "E6", Adjective: "in sich gekehrt", Dimension: "E", Pole: PoleNegative},

	{ID: "A1", Adjective: "hilfsbereit", Dimension: "A", Pole: PolePositive},
	{ID: "A2", Adjective: "mitfühlend", Dimension: "A", Pole: PolePositive},
	{ID: "A3", Adjective: "vertrauensvoll", Dimension: "A", Pole: PolePositive},
	{ID: "A4", Adjective: "durchsetzungsstark", Dimension: "A", Pole: PoleNegative},
	{ID: "A5", Adjective: "kritisch", Dimension: "A", Pole: PoleNegative},
	{ID: "A6", Adjective: "wettbewerbsorientiert", Dimension: "A", Pole: PoleNegative},

	{ID: "N1", Adjective: "besorgt", Dimension: "N", Pole: PolePositive},
	{ID: "N2", Adjective: "leicht reizbar", Dimension: "N", Pole: PolePositive},
	{ID: "N3", Adjective: "verletzlich", Dimension: "N", Pole: PolePositive},
	{ID: "N4", Adjective: "gelassen", Dimension: "N", Pole: PoleNegative},
	{ID: "N5", Adjective: "belastbar", Dimension: "N", Pole: PoleNegative},
	{ID: "N6", Adjective: "ausgeglichen", Dimension: "N", Pole: PoleNegative},
}

// BigFiveTraits exposes the trait configuration for clients that render the
// questionnaire.
func BigFiveTraits() []Trait {
	out := make([]Trait, len(bigFiveTraits))
	copy(out, bigFiveTraits)
	return out
}
