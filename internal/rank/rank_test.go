package rank

import (
	"reflect"
	"testing"
)

func TestRankStableOnEqualScores(t *testing.T) {
	base := []string{"eniyilemek", "iyileştirmek", "en uygun hâle getirmek"}

	got := Rank(base, nil)
	want := []RankedSuggestion{
		{Suggestion: "eniyilemek", Score: 0},
		{Suggestion: "iyileştirmek", Score: 0},
		{Suggestion: "en uygun hâle getirmek", Score: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cold-start order changed: %v", got)
	}
}

func TestRankScoresDescending(t *testing.T) {
	base := []string{"a", "b", "c", "d"}
	scores := map[string]int{"c": 5, "b": -1}

	got := Rank(base, scores)
	want := []RankedSuggestion{
		{Suggestion: "c", Score: 5},
		{Suggestion: "a", Score: 0},
		{Suggestion: "d", Score: 0},
		{Suggestion: "b", Score: -1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRankEmptyBase(t *testing.T) {
	if got := Rank(nil, map[string]int{"x": 3}); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}
