package scoring

import (
	"math"
	"testing"
)

func TestAggregate_AverageIsRoundedMean(t *testing.T) {
	ins := Instrument{
		ID: "test", Neutral: 5,
		Dimensions: []Dimension{
			{ID: "d1", Label: "D1", Items: []Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}},
		},
	}
	ratings := map[string]int{"a": 7, "b": 8, "c": 8}

	scores := Aggregate(ins, ratings)
	if len(scores) != 1 {
		t.Fatalf("expected 1 dimension, got %d", len(scores))
	}
	// mean(7,8,8) = 7.666... → 7.7
	if scores[0].AverageScore != 7.7 {
		t.Errorf("expected 7.7, got %v", scores[0].AverageScore)
	}
}

func TestAggregate_MissingRatingsUseNeutral(t *testing.T) {
	ins := Instrument{
		ID: "test", Neutral: 5,
		Dimensions: []Dimension{
			{ID: "d1", Items: []Item{{ID: "a"}, {ID: "b"}}},
		},
	}

	scores := Aggregate(ins, nil)
	if scores[0].AverageScore != 5.0 {
		t.Errorf("expected neutral mean 5.0, got %v", scores[0].AverageScore)
	}
	for _, it := range scores[0].Items {
		if it.Value != 5 {
			t.Errorf("item %s: expected neutral value 5, got %d", it.ID, it.Value)
		}
	}
}

func TestAggregate_ClampsOutOfRangeRatings(t *testing.T) {
	ins := Instrument{
		Dimensions: []Dimension{{ID: "d1", Items: []Item{{ID: "a"}, {ID: "b"}}}},
	}
	scores := Aggregate(ins, map[string]int{"a": 99, "b": -3})

	vals := map[string]int{}
	for _, it := range scores[0].Items {
		vals[it.ID] = it.Value
	}
	if vals["a"] != ScaleMax {
		t.Errorf("expected clamp to %d, got %d", ScaleMax, vals["a"])
	}
	if vals["b"] != ScaleMin {
		t.Errorf("expected clamp to %d, got %d", ScaleMin, vals["b"])
	}
}

func TestAggregate_SortsDimensionsAndItemsDescending(t *testing.T) {
	ins := Instrument{
		Dimensions: []Dimension{
			{ID: "low", Items: []Item{{ID: "l1"}, {ID: "l2"}}},
			{ID: "high", Items: []Item{{ID: "h1"}, {ID: "h2"}}},
		},
	}
	scores := Aggregate(ins, map[string]int{"l1": 2, "l2": 4, "h1": 9, "h2": 7})

	if scores[0].ID != "high" || scores[1].ID != "low" {
		t.Fatalf("expected [high low], got [%s %s]", scores[0].ID, scores[1].ID)
	}
	if scores[0].Items[0].ID != "h1" {
		t.Errorf("expected h1 first (value 9), got %s", scores[0].Items[0].ID)
	}
}

func TestAggregate_StableOnTies(t *testing.T) {
	ins := Instrument{
		Dimensions: []Dimension{
			{ID: "first", Items: []Item{{ID: "f1"}}},
			{ID: "second", Items: []Item{{ID: "s1"}}},
		},
	}
	scores := Aggregate(ins, map[string]int{"f1": 6, "s1": 6})
	if scores[0].ID != "first" {
		t.Errorf("tie must preserve declared order, got %s first", scores[0].ID)
	}
}

func TestAggregate_MeanPropertyOverScale(t *testing.T) {
	ins := Instrument{
		Dimensions: []Dimension{{ID: "d", Items: []Item{{ID: "x"}, {ID: "y"}}}},
	}
	for x := ScaleMin; x <= ScaleMax; x++ {
		for y := ScaleMin; y <= ScaleMax; y++ {
			scores := Aggregate(ins, map[string]int{"x": x, "y": y})
			want := Round1(float64(x+y) / 2)
			if got := scores[0].AverageScore; got != want {
				t.Fatalf("mean(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		7.04: 7.0, 7.05: 7.1, 7.96: 8.0, 5.0: 5.0,
	}
	for in, want := range cases {
		if got := Round1(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("Round1(%v): expected %v, got %v", in, want, got)
		}
	}
}
