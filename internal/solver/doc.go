// Package solver implements the combination search at the heart of the
// puzzle solver.
//
// Given an ordered list of letter-fragment tiles, the solver produces every
// ordered selection of 1 to N tiles (N is 4 for a standard Quartiles board)
// and the word formed by concatenating the selection. Selections never reuse
// a tile position, but two tiles with identical text at different positions
// are distinct and may appear in the same selection.
//
// # Ordering
//
// Output order is fully deterministic: selections are emitted by length
// ascending, and within a length in lexicographic order over tile positions
// (not tile text). Running the solver twice on the same input produces
// identical output.
//
// # Complexity
//
// For n tiles the number of length-r selections is n!/(n-r)!, summed over
// r = 1..4. A full 20-tile board generates 123,520 candidates, which is
// still well under a millisecond of work; the solver makes no attempt to
// prune or parallelize.
package solver
