package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/docpipe/triage/internal/documents"
	"github.com/docpipe/triage/internal/triage"
	"github.com/docpipe/triage/pkg/storage"
)

// System defines the public contract for pipeline operations.
type System interface {
	Handler() *Handler

	// Run executes the pipeline over a file on local disk.
	Run(ctx context.Context, path string) (*Result, error)

	// RunDocument executes the pipeline over a registered document,
	// staging its blob to a temp file first.
	RunDocument(ctx context.Context, documentID uuid.UUID) (*Result, error)
}

type system struct {
	rt     *Runtime
	docs   documents.System
	store  storage.System
	logger *slog.Logger
}

// New creates the pipeline system. The runtime's capability handles are
// built once by the caller and shared across all requests.
func New(rt *Runtime, docs documents.System, store storage.System, logger *slog.Logger) System {
	return &system{
		rt:     rt,
		docs:   docs,
		store:  store,
		logger: logger.With("system", "pipeline"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Run(ctx context.Context, path string) (*Result, error) {
	return Execute(ctx, s.rt, uuid.New(), path)
}

func (s *system) RunDocument(ctx context.Context, documentID uuid.UUID) (*Result, error) {
	doc, err := s.docs.Find(ctx, documentID)
	if err != nil {
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "triage-run-*")
	if err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	recordID := uuid.New()

	path, err := s.stage(ctx, doc, tempDir)
	if err != nil {
		// A blob that cannot be staged is indistinguishable from an
		// unreadable source file; route it like one.
		return routeFailure(s.rt, triage.NewRecord(recordID),
			triage.WrapError(triage.KindFileIngestion, "stage document", err))
	}

	return Execute(ctx, s.rt, recordID, path)
}

func (s *system) stage(ctx context.Context, doc *documents.Document, tempDir string) (string, error) {
	blob, err := s.store.Download(ctx, doc.StorageKey)
	if err != nil {
		return "", err
	}
	defer blob.Body.Close()

	path := filepath.Join(tempDir, doc.Filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, blob.Body); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}
