package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/quartile-solver/internal/config"
	"github.com/ironsheep/quartile-solver/internal/dictionary"
	"github.com/ironsheep/quartile-solver/internal/imaging"
	"github.com/ironsheep/quartile-solver/internal/logging"
	"github.com/ironsheep/quartile-solver/internal/ocr"
	"github.com/ironsheep/quartile-solver/internal/report"
	"github.com/ironsheep/quartile-solver/internal/solver"
	"github.com/ironsheep/quartile-solver/internal/tiles"
)

type solveOptions struct {
	configPath     string
	imagePath      string
	dictionaryPath string
	dictionaryURL  string
	language       string
	maxTiles       int
	noPreprocess   bool
	verbose        bool
}

// runSolve is the whole pipeline: tiles in, report out.
func runSolve(ctx context.Context, out io.Writer, opts *solveOptions) error {
	log := logging.New(opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, opts)

	board, err := gatherTiles(ctx, cfg, opts, log)
	if err != nil {
		return err
	}

	loader := dictionary.NewLoader(cfg.DictionaryPath, cfg.DictionaryURL, log)
	loader.MinLength = cfg.MinWordLength
	words, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("could not load dictionary: %w", err)
	}
	log.Info().Int("words", words.Len()).Msg("dictionary ready")

	log.Debug().
		Int("tiles", len(board)).
		Int("candidates", solver.Count(len(board), cfg.MaxTiles)).
		Msg("searching combinations")
	candidates := solver.Combinations(board, cfg.MaxTiles)

	rep := report.Organize(candidates, words, cfg.MaxTiles)
	log.Info().Int("found", rep.Total).Msg("solve complete")

	return report.Render(out, rep)
}

// applyFlags lays explicit command-line values over the file configuration.
func applyFlags(cfg *config.Config, opts *solveOptions) {
	if opts.dictionaryPath != "" {
		cfg.DictionaryPath = opts.dictionaryPath
	}
	if opts.dictionaryURL != "" {
		cfg.DictionaryURL = opts.dictionaryURL
	}
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if opts.maxTiles > 0 {
		cfg.MaxTiles = opts.maxTiles
	}
}

// gatherTiles picks the tile source: OCR when an image path was given, the
// configured or built-in board otherwise.
func gatherTiles(ctx context.Context, cfg config.Config, opts *solveOptions, log zerolog.Logger) ([]string, error) {
	if opts.imagePath == "" {
		board := cfg.Tiles
		if len(board) == 0 {
			board = config.DefaultTiles()
		}
		log.Info().Int("tiles", len(board)).Msg("no image provided, using default tiles")
		return board, nil
	}

	if _, err := os.Stat(opts.imagePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %q not found", opts.imagePath)
		}
		return nil, fmt.Errorf("stat image: %w", err)
	}

	if info, err := imaging.Stat(opts.imagePath); err == nil {
		log.Debug().
			Int("width", info.Width).
			Int("height", info.Height).
			Str("format", info.Format).
			Msg("reading puzzle image")
	}

	log.Info().Str("image", opts.imagePath).Msg("extracting tiles")
	extractor := tiles.NewExtractor(ocr.NewEngine(cfg.Language), log)
	extractor.Preprocess = !opts.noPreprocess

	board, err := extractor.Extract(ctx, opts.imagePath)
	if err != nil {
		return nil, err
	}
	log.Info().Strs("tiles", board).Msg("tiles found")
	return board, nil
}
