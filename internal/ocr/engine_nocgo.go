//go:build !cgo

package ocr

// NewEngine returns the default engine for this build: the external
// tesseract binary invoked as a subprocess.
func NewEngine(language string) Engine {
	return NewCommand(language)
}
