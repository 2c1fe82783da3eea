package scoring

import (
	"math"
	"slices"
)

// All instruments rate items on the same fixed 1–10 scale.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// NeutralValue is the default substituted for unanswered items.
const NeutralValue = 5

// Item is one rateable statement within a dimension.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Dimension groups items into one conceptual category (interest area,
// motivation driver group, future-skill cluster).
type Dimension struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Items       []Item `json:"items"`
}

// Instrument is a declarative questionnaire configuration. The aggregator
// itself is instrument-agnostic; only the tables differ.
type Instrument struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Neutral    int         `json:"neutral"`
	Dimensions []Dimension `json:"dimensions"`
}

// RatingItem is one user rating on the 1–10 scale.
type RatingItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DimensionScore is the aggregated result for one dimension.
type DimensionScore struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	AverageScore float64      `json:"averageScore"`
	Color        string       `json:"color"`
	Description  string       `json:"description"`
	Items        []RatingItem `json:"items"`
}

// Clamp forces a rating into the valid scale range.
func Clamp(v int) int {
	if v < ScaleMin {
		return ScaleMin
	}
	if v > ScaleMax {
		return ScaleMax
	}
	return v
}

// Round1 rounds to one decimal place, the precision all dimension averages
// are stored and displayed with.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func (ins Instrument) neutral() int {
	if ins.Neutral >= ScaleMin && ins.Neutral <= ScaleMax {
		return ins.Neutral
	}
	return NeutralValue
}

// Rating returns the clamped rating for an item id, or the instrument's
// neutral default when the item was not answered.
func (ins Instrument) Rating(ratings map[string]int, itemID string) int {
	v, ok := ratings[itemID]
	if !ok {
		return ins.neutral()
	}
	return Clamp(v)
}

// Aggregate converts raw per-item ratings into one DimensionScore per
// configured dimension. Missing ratings fall back to the neutral default,
// so the result is total over the configured domain. Items within a
// dimension are sorted descending by value, dimensions descending by
// average score; both sorts are stable so configured order breaks ties.
func Aggregate(ins Instrument, ratings map[string]int) []DimensionScore {
	out := make([]DimensionScore, 0, len(ins.Dimensions))
	for _, dim := range ins.Dimensions {
		items := make([]RatingItem, 0, len(dim.Items))
		sum := 0
		for _, it := range dim.Items {
			v := ins.Rating(ratings, it.ID)
			sum += v
			items = append(items, RatingItem{ID: it.ID, Label: it.Label, Value: v})
		}
		avg := 0.0
		if len(items) > 0 {
			avg = Round1(float64(sum) / float64(len(items)))
		}
		slices.SortStableFunc(items, func(a, b RatingItem) int {
			return b.Value - a.Value
		})
		out = append(out, DimensionScore{
			ID:           dim.ID,
			Label:        dim.Label,
			AverageScore: avg,
			Color:        dim.Color,
			Description:  dim.Description,
			Items:        items,
		})
	}
	slices.SortStableFunc(out, func(a, b DimensionScore) int {
		switch {
		case a.AverageScore > b.AverageScore:
			return -1
		case a.AverageScore < b.AverageScore:
			return 1
		default:
			return 0
		}
	})
	return out
}
