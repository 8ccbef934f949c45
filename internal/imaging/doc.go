// Package imaging loads puzzle screenshots and prepares them for OCR.
//
// Loading supports PNG, JPEG, and GIF via the standard decoders. The
// preprocessing pipeline improves Tesseract's hit rate on phone screenshots:
// grayscale conversion, contrast stretch, upscaling of small captures, an
// inversion pass for dark-mode screenshots (decided by sampled perceptual
// luminance), and a final binarization threshold.
//
// All operations are pure functions over image.Image values; the same input
// always produces the same output.
package imaging
