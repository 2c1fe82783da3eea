package scoring

// Pole marks whether a Big Five adjective loads on the positive or negative
// end of its dimension.
type Pole string

const (
	PolePositive Pole = "+"
	PoleNegative Pole = "-"
)

// BigFiveDimensions lists the five factor letters in canonical order.
var BigFiveDimensions = []string{"O", "C", "E", "A", "N"}

// Trait is one adjective in the Big Five questionnaire configuration.
type Trait struct {
	ID        string `json:"id"`
	Adjective string `json:"adjective"`
	Dimension string `json:"dimension"`
	Pole      Pole   `json:"pole"`
}

// TraitScore is one rated adjective with its pole-normalized value.
type TraitScore struct {
	TraitID         string `json:"traitId"`
	Adjective       string `json:"adjective"`
	Score           int    `json:"score"`
	NormalizedScore int    `json:"normalizedScore"`
	Dimension       string `json:"dimension"`
	Pole            Pole   `json:"pole"`
}

// PoleScore aggregates the raw ratings of one pole of a dimension.
type PoleScore struct {
	PoleLabel string  `json:"poleLabel"`
	Score     float64 `json:"score"`
	Color     string  `json:"color"`
}

// BigFiveDimensionScore is the aggregate for one of the five factors.
// Score is the mean of pole-normalized trait values; the per-pole scores
// are means of the raw (non-normalized) ratings of that pole's traits.
type BigFiveDimensionScore struct {
	Dimension    string       `json:"dimension"`
	Label        string       `json:"label"`
	Score        float64      `json:"score"`
	PositivePole PoleScore    `json:"positivePole"`
	NegativePole PoleScore    `json:"negativePole"`
	Description  string       `json:"description"`
	Color        string       `json:"color"`
	Traits       []TraitScore `json:"traits"`
}

// BigFiveNeutral is the slider default, ceil((min+max)/2) on the 1–10 scale.
func BigFiveNeutral() int {
	return (ScaleMin + ScaleMax + 1) / 2
}

// NormalizeTrait reflects negative-pole ratings onto the positive polarity
// axis: pole '-' maps score s to scaleMax+scaleMin-s, pole '+' is identity.
func NormalizeTrait(score int, pole Pole) int {
	if pole == PoleNegative {
		return ScaleMax + ScaleMin - score
	}
	return score
}

// DominantPole returns the pole with the numerically higher raw mean.
// The positive pole wins exact ties.
func (d BigFiveDimensionScore) DominantPole() PoleScore {
	if d.NegativePole.Score > d.PositivePole.Score {
		return d.NegativePole
	}
	return d.PositivePole
}

// AggregateBigFive converts raw adjective ratings into the five dimension
// scores. Missing ratings fall back to the Big Five neutral default.
func AggregateBigFive(ratings map[string]int) []BigFiveDimensionScore {
	out := make([]BigFiveDimensionScore, 0, len(BigFiveDimensions))
	for _, dim := range BigFiveDimensions {
		meta := bigFiveMeta[dim]

		var traits []TraitScore
		normSum := 0
		posSum, posN := 0, 0
		negSum, negN := 0, 0
		for _, t := range bigFiveTraits {
			if t.Dimension != dim {
				continue
			}
			raw, ok := ratings[t.ID]
			if !ok {
				raw = BigFiveNeutral()
			}
			raw = Clamp(raw)
			norm := NormalizeTrait(raw, t.Pole)
			normSum += norm
			if t.Pole == PolePositive {
				posSum += raw
				posN++
			} else {
				negSum += raw
				negN++
			}
			traits = append(traits, TraitScore{
				TraitID:         t.ID,
				Adjective:       t.Adjective,
				Score:           raw,
				NormalizedScore: norm,
				Dimension:       t.Dimension,
				Pole:            t.Pole,
			})
		}

		score := 0.0
		if len(traits) > 0 {
			score = Round1(float64(normSum) / float64(len(traits)))
		}
		pos := PoleScore{PoleLabel: meta.PositiveLabel, Color: meta.PositiveColor}
		if posN > 0 {
			pos.Score = Round1(float64(posSum) / float64(posN))
		}
		neg := PoleScore{PoleLabel: meta.NegativeLabel, Color: meta.NegativeColor}
		if negN > 0 {
			neg.Score = Round1(float64(negSum) / float64(negN))
		}

		out = append(out, BigFiveDimensionScore{
			Dimension:    dim,
			Label:        meta.Label,
			Score:        score,
			PositivePole: pos,
			NegativePole: neg,
			Description:  meta.Description,
			Color:        meta.Color,
			Traits:       traits,
		})
	}
	return out
}
