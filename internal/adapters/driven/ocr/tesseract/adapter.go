// Package tesseract provides an OCR tool adapter that shells out to the
// tesseract binary. Extracted text is evidence, not an identification:
// results carry it in metadata and never as candidates.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ToolAdapter = (*Adapter)(nil)

// DefaultBinary is the tesseract executable name resolved via PATH.
const DefaultBinary = "tesseract"

// Adapter extracts visible text from an image via the tesseract CLI.
type Adapter struct {
	binary string
}

// NewAdapter creates a tesseract adapter. An empty binary falls back to
// resolving "tesseract" on PATH.
func NewAdapter(binary string) *Adapter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Adapter{binary: binary}
}

// Name returns the source tag.
func (a *Adapter) Name() string {
	return domain.SourceOCR
}

// Call runs tesseract on req.ImagePath with stdout output. The result
// never contains candidates: recognized text lands in Meta["text"] for
// the report, and an image with no readable text is an empty result,
// not an error.
func (a *Adapter) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	if req.ImagePath == "" {
		return domain.ErrorResult("ocr: missing image path")
	}
	if _, err := os.Stat(req.ImagePath); err != nil {
		return domain.ErrorResult(fmt.Sprintf("ocr: %v", err))
	}

	// "-" sends the recognized text to stdout instead of a file.
	cmd := exec.CommandContext(ctx, a.binary, req.ImagePath, "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return domain.ErrorResult(fmt.Sprintf("ocr: %v", ctx.Err()))
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return domain.ErrorResult("ocr: " + msg)
	}

	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return domain.EmptyResult(map[string]string{"reason": "no readable text"})
	}

	return domain.OKResult(nil, map[string]string{
		"text":  text,
		"chars": strconv.Itoa(len(text)),
	})
}
