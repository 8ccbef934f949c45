package tiles

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/quartile-solver/internal/imaging"
	"github.com/ironsheep/quartile-solver/internal/ocr"
)

// ErrNoTiles indicates that OCR succeeded but recognized no usable lines.
var ErrNoTiles = errors.New("no tiles found in image")

// Extractor reads tiles from puzzle screenshots.
type Extractor struct {
	// Engine performs the actual text recognition.
	Engine ocr.Engine

	// Preprocess runs the image through the OCR preparation pipeline
	// before recognition. On by default; disable to feed the raw file to
	// Tesseract.
	Preprocess bool

	log zerolog.Logger
}

// NewExtractor returns an Extractor with preprocessing enabled.
func NewExtractor(engine ocr.Engine, log zerolog.Logger) *Extractor {
	return &Extractor{Engine: engine, Preprocess: true, log: log}
}

// Extract runs OCR on the image and returns the tiles in board order.
// Returns ErrNoTiles when recognition yields no non-blank lines.
func (e *Extractor) Extract(ctx context.Context, imagePath string) ([]string, error) {
	path := imagePath

	if e.Preprocess {
		prepared, err := e.prepare(imagePath)
		if err != nil {
			return nil, err
		}
		defer os.Remove(prepared)
		path = prepared
	}

	text, err := e.Engine.Recognize(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract tiles: %w", err)
	}

	found := ParseLines(text)
	if len(found) == 0 {
		return nil, ErrNoTiles
	}

	e.log.Debug().Strs("tiles", found).Msg("tiles extracted")
	return found, nil
}

// prepare preprocesses the screenshot and writes the result to a temporary
// PNG, since Tesseract wants a file path. The caller removes the file.
func (e *Extractor) prepare(imagePath string) (string, error) {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", "quartiles-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := png.Encode(tmpFile, imaging.PrepareForOCR(img)); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp image: %w", err)
	}
	return tmpPath, nil
}

// ParseLines splits recognized text into tiles: one per line, trimmed and
// lowercased, blank lines dropped. Line order is preserved and duplicate
// text is kept.
func ParseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		tile := strings.ToLower(strings.TrimSpace(line))
		if tile == "" {
			continue
		}
		out = append(out, tile)
	}
	return out
}
