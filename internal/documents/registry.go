package documents

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is a process-local document metadata store, safe for concurrent
// use. Listing returns newest-first. Blob bytes live in storage; losing the
// registry on restart only loses registration metadata.
type Registry struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]Document
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[uuid.UUID]Document)}
}

// Create stores a new document record and returns a copy.
func (r *Registry) Create(id uuid.UUID, storageKey string, cmd CreateCommand) *Document {
	doc := Document{
		ID:          id,
		Filename:    cmd.Filename,
		ContentType: cmd.ContentType,
		SizeBytes:   int64(len(cmd.Data)),
		PageCount:   cmd.PageCount,
		StorageKey:  storageKey,
		UploadedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.docs[id] = doc
	r.mu.Unlock()

	return &doc
}

// Find returns the document with the given id or ErrNotFound.
func (r *Registry) Find(id uuid.UUID) (*Document, error) {
	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

// Delete removes the document with the given id or returns ErrNotFound.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

// Page returns a newest-first slice of documents along with the total count.
func (r *Registry) Page(offset, limit int) ([]Document, int) {
	r.mu.RLock()
	all := make([]Document, 0, len(r.docs))
	for _, doc := range r.docs {
		all = append(all, doc)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b Document) int {
		return b.UploadedAt.Compare(a.UploadedAt)
	})

	total := len(all)
	if offset >= total {
		return []Document{}, total
	}

	end := min(offset+limit, total)
	return all[offset:end], total
}
