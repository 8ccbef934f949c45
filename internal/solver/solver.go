package solver

import "strings"

// Candidate is one ordered selection of tiles together with the word formed
// by concatenating them in selection order. Word is always lowercase.
type Candidate struct {
	Tiles []string `json:"tiles"`
	Word  string   `json:"word"`
}

// Combinations generates every ordered selection of 1..maxLen tiles from the
// input list, without reusing a tile position within a selection.
//
// Parameters:
//   - tiles: the puzzle tiles in board order. Duplicate text is allowed;
//     tiles are distinguished by position.
//   - maxLen: the largest selection size, typically 4.
//
// Returns all candidates ordered by selection length ascending, then by
// lexicographic order over tile positions. Lengths greater than len(tiles)
// are skipped.
func Combinations(tiles []string, maxLen int) []Candidate {
	if maxLen > len(tiles) {
		maxLen = len(tiles)
	}

	out := make([]Candidate, 0, Count(len(tiles), maxLen))
	used := make([]bool, len(tiles))
	selection := make([]int, 0, maxLen)

	for r := 1; r <= maxLen; r++ {
		permute(tiles, used, selection, r, &out)
	}
	return out
}

// permute extends the current selection one position at a time, visiting
// free positions in ascending order so the overall emit order is
// lexicographic over positions.
func permute(tiles []string, used []bool, selection []int, r int, out *[]Candidate) {
	if len(selection) == r {
		*out = append(*out, build(tiles, selection))
		return
	}
	for i := range tiles {
		if used[i] {
			continue
		}
		used[i] = true
		permute(tiles, used, append(selection, i), r, out)
		used[i] = false
	}
}

func build(tiles []string, selection []int) Candidate {
	picked := make([]string, len(selection))
	var b strings.Builder
	for i, idx := range selection {
		picked[i] = tiles[idx]
		b.WriteString(tiles[idx])
	}
	return Candidate{Tiles: picked, Word: strings.ToLower(b.String())}
}

// Count returns the number of candidates Combinations will generate for n
// tiles and selections up to maxLen: the sum of n!/(n-r)! for r = 1..maxLen.
func Count(n, maxLen int) int {
	if maxLen > n {
		maxLen = n
	}
	total := 0
	perms := 1
	for r := 1; r <= maxLen; r++ {
		perms *= n - r + 1
		total += perms
	}
	return total
}
