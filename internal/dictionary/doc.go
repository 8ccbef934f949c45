// Package dictionary loads the word list the solver checks candidates
// against.
//
// The word list is a flat UTF-8 text file, one word per line, cached in the
// working directory. When the cache file is missing the loader fetches it
// once from a fixed URL and writes it to disk; every later run reads the
// cache without touching the network. Words are lowercased on load and
// entries shorter than the configured minimum (default 2) are dropped.
//
// The download is guarded by an advisory file lock so two invocations racing
// on a cold cache do not interleave writes. The fetch itself is abstracted
// behind the Fetcher interface so tests can supply a fake source.
package dictionary
