package documents

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docpipe/triage/pkg/pagination"
	"github.com/docpipe/triage/pkg/storage"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type system struct {
	registry   *Registry
	store      storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the document system over blob storage and a fresh registry.
func New(store storage.System, logger *slog.Logger, cfg pagination.Config) System {
	return &system{
		registry:   NewRegistry(),
		store:      store,
		logger:     logger.With("system", "documents"),
		pagination: cfg,
	}
}

func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, s.pagination, maxUploadSize)
}

func (s *system) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Document], error) {
	docs, total := s.registry.Page(page.Offset(), page.PageSize)
	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (s *system) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	return s.registry.Find(id)
}

func (s *system) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	id := uuid.New()
	key := fmt.Sprintf("%s/%s", id, cmd.Filename)

	if err := s.store.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload document blob: %w", err)
	}

	doc := s.registry.Create(id, key, cmd)

	s.logger.InfoContext(
		ctx, "document registered",
		"id", doc.ID,
		"filename", doc.Filename,
		"size_bytes", doc.SizeBytes,
	)

	return doc, nil
}

func (s *system) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.registry.Find(id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		s.logger.WarnContext(ctx, "blob delete failed", "id", id, "error", err)
	}

	return s.registry.Delete(id)
}
