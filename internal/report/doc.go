// Package report filters solver candidates against the dictionary and
// formats the result for display.
//
// Results are grouped into buckets by tile count (1 through 4). Within a
// bucket each distinct word appears once: when several tile sequences spell
// the same word, the first sequence in solver generation order is kept as
// the representative and the rest are dropped. Bucket entries are sorted
// alphabetically by word.
//
// Rendering prints one section per non-empty bucket followed by a summary
// table of per-bucket unique-word counts and a grand total. Empty buckets
// are omitted from the sections but still appear in the summary with a
// count of zero.
package report
