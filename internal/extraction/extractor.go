// Package extraction implements the extractor capability for PDF sources:
// per-page text extraction with bounded concurrency, joined and re-split
// into overlapping chunks sized for classification.
package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"github.com/docpipe/triage/internal/triage"
)

// minTextLength is the floor below which extracted text is considered
// unusable. Scanned-image PDFs typically land here; without an OCR path
// that is a terminal extraction failure for this service.
const minTextLength = 20

// Config holds chunking parameters.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
}

// PDFExtractor implements triage.Extractor for PDF files on local disk.
type PDFExtractor struct {
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// New creates a PDF extractor with the given chunking configuration.
func New(cfg Config, logger *slog.Logger) *PDFExtractor {
	return &PDFExtractor{
		chunkSize:    cfg.ChunkSize,
		chunkOverlap: cfg.ChunkOverlap,
		logger:       logger.With("capability", "extractor"),
	}
}

// Extract reads the PDF at path and returns overlapping text chunks.
// An unreadable file surfaces as file ingestion; a readable file without
// usable text surfaces as text extraction.
func (e *PDFExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, triage.WrapError(triage.KindFileIngestion, fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	pages, err := extractPages(ctx, reader)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if len(text) < minTextLength {
		return nil, triage.Errorf(
			triage.KindTextExtraction,
			"document at %s produced no usable text", path,
		)
	}

	chunks := Split(text, e.chunkSize, e.chunkOverlap)

	e.logger.InfoContext(
		ctx, "extraction complete",
		"path", path,
		"pages", len(pages),
		"chunks", len(chunks),
	)

	return chunks, nil
}

func extractPages(ctx context.Context, reader *pdf.Reader) ([]string, error) {
	pageCount := reader.NumPage()
	pages := make([]string, pageCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(pageCount))

	for i := 1; i <= pageCount; i++ {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			page := reader.Page(i)
			if page.V.IsNull() {
				return nil
			}

			text, err := page.GetPlainText(nil)
			if err != nil {
				return triage.WrapError(
					triage.KindTextExtraction,
					fmt.Sprintf("page %d", i), err,
				)
			}

			pages[i-1] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if triage.IsDomain(err) {
			return nil, err
		}
		return nil, triage.WrapError(triage.KindTextExtraction, "extract pages", err)
	}

	return pages, nil
}

func workerCount(pageCount int) int {
	return max(min(runtime.NumCPU(), pageCount), 1)
}
