// Package config holds the solver's runtime configuration.
//
// Configuration comes from an optional JSON file; a missing file yields the
// defaults. Command-line flags override file values at the call site.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ironsheep/quartile-solver/internal/dictionary"
)

// Defaults applied when the config file is absent or a field is unset.
const (
	DefaultLanguage      = "eng"
	DefaultMaxTiles      = 4
	DefaultMinWordLength = dictionary.DefaultMinLength
)

// Config is the application configuration.
type Config struct {
	// DictionaryPath is the word-list cache file location.
	DictionaryPath string `json:"dictionary_path"`

	// DictionaryURL is fetched when the cache file is missing.
	DictionaryURL string `json:"dictionary_url"`

	// Language is the Tesseract language code for OCR.
	Language string `json:"language"`

	// MaxTiles is the largest number of tiles concatenated per word.
	MaxTiles int `json:"max_tiles"`

	// MinWordLength drops dictionary entries shorter than this.
	MinWordLength int `json:"min_word_length"`

	// Tiles overrides the built-in fallback tile list used when no image
	// is given.
	Tiles []string `json:"tiles,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DictionaryPath: dictionary.DefaultPath,
		DictionaryURL:  dictionary.DefaultURL,
		Language:       DefaultLanguage,
		MaxTiles:       DefaultMaxTiles,
		MinWordLength:  DefaultMinWordLength,
	}
}

// DefaultTiles is the built-in 20-tile board used when neither an image nor
// a configured tile list is supplied.
func DefaultTiles() []string {
	return []string{
		"far", "ci", "ca", "lly", "rec", "ep", "tac", "les", "cap", "itu",
		"la", "te", "jou", "rn", "al", "ing", "aft", "er", "tho", "ught",
	}
}

// Load reads configuration from path. A missing file is not an error; the
// defaults are returned. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.DictionaryPath = strings.TrimSpace(c.DictionaryPath)
	c.DictionaryURL = strings.TrimSpace(c.DictionaryURL)
	c.Language = strings.TrimSpace(c.Language)

	d := Default()
	if c.DictionaryPath == "" {
		c.DictionaryPath = d.DictionaryPath
	}
	if c.DictionaryURL == "" {
		c.DictionaryURL = d.DictionaryURL
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.MaxTiles == 0 {
		c.MaxTiles = d.MaxTiles
	}
	if c.MinWordLength == 0 {
		c.MinWordLength = d.MinWordLength
	}

	for i, tile := range c.Tiles {
		c.Tiles[i] = strings.ToLower(strings.TrimSpace(tile))
	}
}

func (c *Config) validate() error {
	if c.MaxTiles < 1 {
		return fmt.Errorf("max_tiles must be at least 1, got %d", c.MaxTiles)
	}
	if c.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be at least 1, got %d", c.MinWordLength)
	}
	for _, tile := range c.Tiles {
		if tile == "" {
			return errors.New("tiles must not contain empty entries")
		}
	}
	return nil
}
