// Package tiles turns a puzzle screenshot into the ordered list of letter
// fragments the solver works on.
//
// The extractor runs an OCR engine over the image (optionally after the
// preprocessing pipeline in internal/imaging) and parses the recognized
// text: one tile per line, whitespace trimmed, lowercased, blank lines
// dropped. Input order is preserved because it reflects the board layout,
// and duplicate tile text is kept; tiles are positional, not unique.
package tiles
