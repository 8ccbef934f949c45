package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ironsheep/quartile-solver/internal/dictionary"
	"github.com/ironsheep/quartile-solver/internal/solver"
)

// Entry is one reported word with the tile sequence that produced it.
type Entry struct {
	Tiles []string `json:"tiles"`
	Word  string   `json:"word"`
}

// Bucket groups entries by the number of tiles used.
type Bucket struct {
	TileCount int     `json:"tile_count"`
	Entries   []Entry `json:"entries"`
}

// Report is the organized result of a solve.
type Report struct {
	// Buckets holds the non-empty buckets in ascending tile-count order.
	Buckets []Bucket `json:"buckets"`

	// Counts maps every tile count 1..MaxTiles to its unique-word count,
	// including zeroes for empty buckets.
	Counts map[int]int `json:"counts"`

	// Total is the number of distinct valid words across all buckets.
	Total int `json:"total"`

	// MaxTiles is the largest selection size that was searched.
	MaxTiles int `json:"max_tiles"`
}

// Organize filters candidates against the dictionary and groups the
// survivors into per-tile-count buckets.
//
// Deduplication keeps the first tile sequence (in candidate order) for each
// distinct word within a bucket. A word generated by several sequences is
// counted once per bucket.
func Organize(candidates []solver.Candidate, words dictionary.Set, maxTiles int) *Report {
	type bucketState struct {
		first map[string][]string
		order []string
	}

	states := make(map[int]*bucketState)
	for _, c := range candidates {
		if !words.Contains(c.Word) {
			continue
		}
		n := len(c.Tiles)
		st := states[n]
		if st == nil {
			st = &bucketState{first: make(map[string][]string)}
			states[n] = st
		}
		if _, seen := st.first[c.Word]; seen {
			continue
		}
		st.first[c.Word] = c.Tiles
		st.order = append(st.order, c.Word)
	}

	rep := &Report{
		Counts:   make(map[int]int, maxTiles),
		MaxTiles: maxTiles,
	}
	for n := 1; n <= maxTiles; n++ {
		st := states[n]
		if st == nil {
			rep.Counts[n] = 0
			continue
		}

		sorted := make([]string, len(st.order))
		copy(sorted, st.order)
		sort.Strings(sorted)

		entries := make([]Entry, 0, len(sorted))
		for _, w := range sorted {
			entries = append(entries, Entry{Tiles: st.first[w], Word: w})
		}

		rep.Buckets = append(rep.Buckets, Bucket{TileCount: n, Entries: entries})
		rep.Counts[n] = len(entries)
		rep.Total += len(entries)
	}
	return rep
}

// Render writes the human-readable report: one section per non-empty bucket
// with "tile + tile = word" lines in alphabetical order, then the summary
// table.
func Render(w io.Writer, r *Report) error {
	for _, b := range r.Buckets {
		if _, err := fmt.Fprintf(w, "\n--- %d Tile Combinations ---\n", b.TileCount); err != nil {
			return err
		}
		for _, e := range b.Entries {
			if _, err := fmt.Fprintf(w, "%s = %s\n", strings.Join(e.Tiles, " + "), e.Word); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nSummary:\n%s\n", renderSummary(r)); err != nil {
		return err
	}
	return nil
}

// renderSummary builds the per-bucket count table with a grand-total footer.
func renderSummary(r *Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tiles", "Words"})

	for n := 1; n <= r.MaxTiles; n++ {
		tw.AppendRow(table.Row{strconv.Itoa(n), strconv.Itoa(r.Counts[n])})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(r.Total)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AlignFooter: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
