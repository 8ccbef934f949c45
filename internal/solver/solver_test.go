package solver

import (
	"reflect"
	"testing"
)

func TestCombinations_TwoTiles(t *testing.T) {
	got := Combinations([]string{"ca", "te"}, 4)

	want := []Candidate{
		{Tiles: []string{"ca"}, Word: "ca"},
		{Tiles: []string{"te"}, Word: "te"},
		{Tiles: []string{"ca", "te"}, Word: "cate"},
		{Tiles: []string{"te", "ca"}, Word: "teca"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Combinations mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestCombinations_CountsMatchFormula(t *testing.T) {
	// n!/(n-r)! per length r, summed over r=1..4
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 4},                      // 2 + 2
		{3, 15},                     // 3 + 6 + 6
		{4, 4 + 12 + 24 + 24},       // 64
		{5, 5 + 20 + 60 + 120},      // 205
		{6, 6 + 30 + 120 + 360},     // 516
		{20, 20 + 380 + 6840 + 116280},
	}

	for _, tc := range cases {
		tiles := make([]string, tc.n)
		for i := range tiles {
			tiles[i] = string(rune('a' + i))
		}

		got := Combinations(tiles, 4)
		if len(got) != tc.want {
			t.Errorf("n=%d: got %d candidates, want %d", tc.n, len(got), tc.want)
		}
		if c := Count(tc.n, 4); c != tc.want {
			t.Errorf("Count(%d, 4) = %d, want %d", tc.n, c, tc.want)
		}
	}
}

func TestCombinations_PerLengthCounts(t *testing.T) {
	tiles := []string{"a", "b", "c", "d", "e"}
	got := Combinations(tiles, 4)

	perLength := map[int]int{}
	for _, c := range got {
		perLength[len(c.Tiles)]++
	}

	want := map[int]int{1: 5, 2: 20, 3: 60, 4: 120}
	if !reflect.DeepEqual(perLength, want) {
		t.Errorf("per-length counts = %v, want %v", perLength, want)
	}
}

func TestCombinations_Deterministic(t *testing.T) {
	tiles := []string{"far", "ci", "ca", "lly", "rec"}

	first := Combinations(tiles, 4)
	second := Combinations(tiles, 4)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same input should produce identical output")
	}
}

func TestCombinations_LengthAscendingThenPositional(t *testing.T) {
	got := Combinations([]string{"x", "y", "z"}, 2)

	want := []Candidate{
		{Tiles: []string{"x"}, Word: "x"},
		{Tiles: []string{"y"}, Word: "y"},
		{Tiles: []string{"z"}, Word: "z"},
		{Tiles: []string{"x", "y"}, Word: "xy"},
		{Tiles: []string{"x", "z"}, Word: "xz"},
		{Tiles: []string{"y", "x"}, Word: "yx"},
		{Tiles: []string{"y", "z"}, Word: "yz"},
		{Tiles: []string{"z", "x"}, Word: "zx"},
		{Tiles: []string{"z", "y"}, Word: "zy"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ordering mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestCombinations_DuplicateTilesAreDistinctPositions(t *testing.T) {
	// Two tiles with equal text still count as separate positions, so the
	// pair is selected in both orders.
	got := Combinations([]string{"ab", "ab"}, 4)

	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4", len(got))
	}
	if got[2].Word != "abab" || got[3].Word != "abab" {
		t.Errorf("expected both orderings of the duplicate pair, got %v", got)
	}
}

func TestCombinations_MaxLenBeyondTileCount(t *testing.T) {
	got := Combinations([]string{"a", "b"}, 4)
	// Lengths 3 and 4 are skipped when only 2 tiles exist.
	if len(got) != 4 {
		t.Errorf("got %d candidates, want 4", len(got))
	}
}

func TestCombinations_Empty(t *testing.T) {
	if got := Combinations(nil, 4); len(got) != 0 {
		t.Errorf("empty input should yield no candidates, got %v", got)
	}
}

func TestCombinations_LowercasesWord(t *testing.T) {
	got := Combinations([]string{"Ca", "TE"}, 2)
	for _, c := range got {
		for _, r := range c.Word {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("word %q should be lowercase", c.Word)
			}
		}
	}
}

func TestCount_Boundaries(t *testing.T) {
	if got := Count(0, 4); got != 0 {
		t.Errorf("Count(0, 4) = %d, want 0", got)
	}
	if got := Count(1, 4); got != 1 {
		t.Errorf("Count(1, 4) = %d, want 1", got)
	}
	if got := Count(3, 10); got != 15 {
		t.Errorf("Count(3, 10) = %d, want 15", got)
	}
}
