// Package documents implements the document registration domain: upload
// handling, metadata, and blob storage integration. Registration metadata
// is held in a process-local registry; the blob store carries the bytes.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a registered document with its metadata and blob
// storage reference.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CreateCommand carries the data needed to upload and register a new
// document. Data holds the raw file bytes; PageCount is optional and
// extracted by the handler via pdfcpu.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
}
