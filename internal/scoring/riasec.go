package scoring

// Area is one of Holland's six interest areas.
type Area string

const (
	AreaRealistic     Area = "R"
	AreaInvestigative Area = "I"
	AreaArtistic      Area = "A"
	AreaSocial        Area = "S"
	AreaEnterprising  Area = "E"
	AreaConventional  Area = "C"
)

// AreaScore is the aggregated interest score for one RIASEC area.
type AreaScore struct {
	Area        Area    `json:"area"`
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

// RiasecScores computes the mean rating per RIASEC area from the 42-item
// questionnaire. Unlike the generic instruments the result stays in the
// declared R-I-A-S-E-C order; the sorted hierarchy is derived separately.
func RiasecScores(ratings map[string]int) []AreaScore {
	ins := RiasecInstrument()
	out := make([]AreaScore, 0, len(ins.Dimensions))
	for _, dim := range ins.Dimensions {
		sum := 0
		for _, it := range dim.Items {
			sum += ins.Rating(ratings, it.ID)
		}
		avg := 0.0
		if len(dim.Items) > 0 {
			avg = Round1(float64(sum) / float64(len(dim.Items)))
		}
		out = append(out, AreaScore{
			Area:        Area(dim.ID),
			Value:       avg,
			Label:       dim.Label,
			Color:       dim.Color,
			Description: dim.Description,
		})
	}
	return out
}
