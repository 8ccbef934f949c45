package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// Defaults for the standard TWL06 Scrabble word list.
const (
	DefaultPath      = "twl06.txt"
	DefaultURL       = "https://raw.githubusercontent.com/jessicatysu/scrabble/master/TWL06.txt"
	DefaultMinLength = 2
)

// ErrEmpty is returned when the word list loads successfully but contains no
// usable words. Callers treat this as fatal: with no valid words there is no
// possible output.
var ErrEmpty = errors.New("dictionary contains no words")

// Set is an unordered, duplicate-free collection of lowercase words.
type Set map[string]struct{}

// Contains reports whether word is in the set. The word must already be
// lowercase; the set never stores mixed case.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct words in the set.
func (s Set) Len() int { return len(s) }

// Fetcher retrieves the remote word list. It exists so tests can substitute
// a fake source for the network.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (io.ReadCloser, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	return f(ctx, url)
}

// HTTPFetcher fetches the word list over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch performs a GET request and returns the response body. Any status
// other than 200 is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Loader ensures the word list exists on disk and parses it into a Set.
type Loader struct {
	// Path is the cache file location, one word per line.
	Path string

	// URL is fetched when Path does not exist.
	URL string

	// MinLength drops words shorter than this many bytes. Zero means
	// DefaultMinLength.
	MinLength int

	// Fetcher supplies the remote word list. Nil means HTTPFetcher.
	Fetcher Fetcher

	log zerolog.Logger
}

// NewLoader returns a Loader with the standard TWL06 defaults.
func NewLoader(path, url string, log zerolog.Logger) *Loader {
	if path == "" {
		path = DefaultPath
	}
	if url == "" {
		url = DefaultURL
	}
	return &Loader{
		Path:      path,
		URL:       url,
		MinLength: DefaultMinLength,
		Fetcher:   &HTTPFetcher{},
		log:       log,
	}
}

// Load returns the word set, downloading the cache file first if it is
// missing. The returned set is immutable by convention; nothing mutates it
// after Load returns.
func (l *Loader) Load(ctx context.Context) (Set, error) {
	if _, err := os.Stat(l.Path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat dictionary cache: %w", err)
		}
		if err := l.download(ctx); err != nil {
			return nil, fmt.Errorf("download dictionary: %w", err)
		}
	}

	set, err := l.readFile()
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, ErrEmpty
	}

	l.log.Debug().Int("words", len(set)).Str("path", l.Path).Msg("dictionary loaded")
	return set, nil
}

// download fetches the remote word list and writes the cache file. An
// advisory lock serializes concurrent invocations on a cold cache; the
// process that loses the race finds the file already written and returns.
func (l *Loader) download(ctx context.Context) error {
	lock := flock.New(l.Path + ".lock")
	if err := lock.Lock(); err == nil {
		defer lock.Unlock()
	}

	// Another process may have completed the download while we waited.
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	}

	l.log.Info().Str("url", l.URL).Msg("downloading dictionary")

	fetcher := l.Fetcher
	if fetcher == nil {
		fetcher = &HTTPFetcher{}
	}
	body, err := fetcher.Fetch(ctx, l.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(l.Path), ".twl-download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}

	if err := os.Rename(tmpPath, l.Path); err != nil {
		return fmt.Errorf("move cache into place: %w", err)
	}
	return nil
}

// readFile parses the cache file line by line: trim whitespace, lowercase,
// keep entries of at least MinLength. Duplicate lines collapse into the set.
func (l *Loader) readFile() (Set, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	minLen := l.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	set := make(Set)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(word) < minLen {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return set, nil
}
