//go:build cgo

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text through the native libtesseract bindings.
type Tesseract struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string
}

// NewTesseract returns a native-bindings engine for the given language.
func NewTesseract(language string) *Tesseract {
	return &Tesseract{Language: language}
}

// Recognize performs OCR on the image file and returns the recognized text.
//
// A fresh client is created per call; the solver reads a single image per
// invocation so there is nothing to amortize.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.Language != "" {
		if err := client.SetLanguage(t.Language); err != nil {
			return "", fmt.Errorf("failed to set language: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// Version returns the linked Tesseract version string.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

// NewEngine returns the default engine for this build: the native
// libtesseract bindings.
func NewEngine(language string) Engine {
	return NewTesseract(language)
}
