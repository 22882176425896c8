// internal/app/system/ocr/ocr.go

// Package ocr extracts text from receipt images.
//
// The implementation shells out to the tesseract CLI rather than linking
// the cgo bindings; OCR is one subprocess call per upload and keeping the
// binary a pure-Go build is worth more than the exec overhead.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Recognizer turns image bytes into raw text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, lang string) (string, error)
}

// Tesseract runs the tesseract CLI. The zero value uses "tesseract" from
// PATH.
type Tesseract struct {
	// Binary overrides the tesseract executable path.
	Binary string
}

// Recognize writes the image to a temp file and runs
// `tesseract <file> stdout -l <lang>`.
func (t *Tesseract) Recognize(ctx context.Context, image []byte, lang string) (string, error) {
	bin := t.Binary
	if bin == "" {
		bin = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}

	dir, err := os.MkdirTemp("", "ecochef-ocr-*")
	if err != nil {
		return "", fmt.Errorf("ocr: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "receipt")
	if err := os.WriteFile(path, image, 0o600); err != nil {
		return "", fmt.Errorf("ocr: write image: %w", err)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, path, "stdout", "-l", lang)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ocr: tesseract: %w: %s", err, stderr.String())
	}
	return out.String(), nil
}
