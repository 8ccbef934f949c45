package dictionary

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testLoader(t *testing.T, contents string) *Loader {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write word list: %v", err)
	}
	return NewLoader(path, "http://unused.invalid/words", zerolog.Nop())
}

func fakeFetcher(contents string) Fetcher {
	return FetcherFunc(func(ctx context.Context, url string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(contents)), nil
	})
}

func TestLoad_ParsesAndFilters(t *testing.T) {
	l := testLoader(t, "CATE\nca\nte\n\n  trimmed  \na\nx\n")

	set, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, want := range []string{"cate", "ca", "te", "trimmed"} {
		if !set.Contains(want) {
			t.Errorf("set should contain %q", want)
		}
	}
	// Single-letter entries are below the minimum length.
	if set.Contains("a") || set.Contains("x") {
		t.Error("single-letter words should be filtered out")
	}
	if set.Len() != 4 {
		t.Errorf("set.Len() = %d, want 4", set.Len())
	}
}

func TestLoad_DuplicatesCollapse(t *testing.T) {
	l := testLoader(t, "word\nWORD\nWord\n")

	set, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("duplicate lines should collapse: Len() = %d, want 1", set.Len())
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	l := testLoader(t, "\n\n a \n")

	_, err := l.Load(context.Background())
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestLoad_FetchesWhenCacheMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	l := NewLoader(path, "http://example.invalid/words", zerolog.Nop())
	l.Fetcher = fakeFetcher("alpha\nbeta\n")

	set, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !set.Contains("alpha") || !set.Contains("beta") {
		t.Error("fetched words should be in the set")
	}

	// The cache file must now exist and be readable without the fetcher.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("cache file was not written: %v", err)
	}
	l2 := NewLoader(path, "http://example.invalid/words", zerolog.Nop())
	l2.Fetcher = FetcherFunc(func(ctx context.Context, url string) (io.ReadCloser, error) {
		t.Error("cache hit should not fetch")
		return nil, errors.New("unexpected fetch")
	})
	if _, err := l2.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
}

func TestLoad_CacheHitSkipsFetcher(t *testing.T) {
	l := testLoader(t, "cached\n")
	l.Fetcher = FetcherFunc(func(ctx context.Context, url string) (io.ReadCloser, error) {
		t.Error("fetcher should not be called when the cache exists")
		return nil, errors.New("unexpected fetch")
	})

	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestLoad_FetchFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	l := NewLoader(path, "http://example.invalid/words", zerolog.Nop())
	l.Fetcher = FetcherFunc(func(ctx context.Context, url string) (io.ReadCloser, error) {
		return nil, errors.New("network down")
	})

	if _, err := l.Load(context.Background()); err == nil {
		t.Error("fetch failure with no cache should be an error")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("failed fetch should not leave a cache file behind")
	}
}

func TestLoad_MinLengthConfigurable(t *testing.T) {
	l := testLoader(t, "ab\nabc\nabcd\n")
	l.MinLength = 4

	set, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set.Len() != 1 || !set.Contains("abcd") {
		t.Errorf("MinLength=4 should keep only abcd, got %v", set)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "remote\nwords\n")
	}))
	defer srv.Close()

	f := &HTTPFetcher{Client: srv.Client()}
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != "remote\nwords\n" {
		t.Errorf("unexpected body %q", data)
	}
}

func TestHTTPFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := &HTTPFetcher{Client: srv.Client()}
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("non-200 status should be an error")
	}
}

func TestHTTPFetcher_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &HTTPFetcher{Client: srv.Client()}
	if _, err := f.Fetch(ctx, srv.URL); err == nil {
		t.Error("cancelled context should abort the fetch")
	}
}
