package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnavailable indicates that no Tesseract installation could be found.
var ErrUnavailable = errors.New("tesseract not found, install tesseract-ocr")

// Engine recognizes text in an image file. Implementations return the raw
// recognized text with Tesseract's own line structure preserved.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Command runs the external tesseract binary as a subprocess. It is the
// no-CGO backend and always available for tests and environments where
// linking libtesseract is impractical.
type Command struct {
	// Language is the Tesseract language code, e.g. "eng". Empty uses
	// Tesseract's default.
	Language string

	// Binary overrides the executable name. Empty means "tesseract"
	// resolved on PATH.
	Binary string
}

// NewCommand returns a subprocess-backed engine for the given language.
func NewCommand(language string) *Command {
	return &Command{Language: language}
}

// Recognize invokes "tesseract <image> stdout" and returns the captured
// standard output. Standard error is kept only for diagnostics on failure.
//
// A missing binary yields an error wrapping ErrUnavailable. A non-zero exit
// yields an error that includes the tail of stderr.
func (c *Command) Recognize(ctx context.Context, imagePath string) (string, error) {
	binary := c.Binary
	if binary == "" {
		binary = "tesseract"
	}

	args := []string{imagePath, "stdout"}
	if c.Language != "" {
		args = append(args, "-l", c.Language)
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w (looked for %q)", ErrUnavailable, binary)
		}
		return "", fmt.Errorf("tesseract failed: %v: %s", err, stderrTail(&stderr))
	}
	return stdout.String(), nil
}

// stderrTail returns the last non-empty line of captured stderr, which is
// where Tesseract puts its actual complaint.
func stderrTail(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "no diagnostic output"
}
