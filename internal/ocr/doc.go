// Package ocr provides text recognition for puzzle screenshots using
// Tesseract.
//
// Two backends implement the Engine interface:
//
//   - With CGO enabled, gosseract/v2 links the native Tesseract library
//     directly (no subprocess).
//   - Without CGO, the external tesseract binary is invoked as a
//     subprocess ("tesseract <image> stdout") and its standard output is
//     captured as the recognized text.
//
// NewEngine returns whichever backend the build supports. Both emit the
// same shape of output: raw UTF-8 text with one recognized line per tile.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// When Tesseract is missing, Recognize fails with an error wrapping
// ErrUnavailable so callers can print an actionable diagnostic.
package ocr
