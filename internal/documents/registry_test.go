package documents_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docpipe/triage/internal/documents"
)

func TestRegistry(t *testing.T) {
	t.Run("create then find round-trips", func(t *testing.T) {
		registry := documents.NewRegistry()
		id := uuid.New()

		created := registry.Create(id, "key/report.pdf", documents.CreateCommand{
			Data:        []byte("%PDF-1.7"),
			Filename:    "report.pdf",
			ContentType: "application/pdf",
		})

		found, err := registry.Find(id)
		if err != nil {
			t.Fatalf("Find error: %v", err)
		}
		if found.Filename != "report.pdf" || found.StorageKey != "key/report.pdf" {
			t.Errorf("found = %+v", found)
		}
		if found.SizeBytes != created.SizeBytes {
			t.Errorf("size = %d, want %d", found.SizeBytes, created.SizeBytes)
		}
	})

	t.Run("find unknown id returns ErrNotFound", func(t *testing.T) {
		registry := documents.NewRegistry()
		if _, err := registry.Find(uuid.New()); !errors.Is(err, documents.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		registry := documents.NewRegistry()
		id := uuid.New()
		registry.Create(id, "k", documents.CreateCommand{Filename: "a.pdf"})

		if err := registry.Delete(id); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if _, err := registry.Find(id); !errors.Is(err, documents.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound after delete", err)
		}
		if err := registry.Delete(id); !errors.Is(err, documents.ErrNotFound) {
			t.Errorf("second delete = %v, want ErrNotFound", err)
		}
	})

	t.Run("page returns newest first with total", func(t *testing.T) {
		registry := documents.NewRegistry()
		for range 5 {
			registry.Create(uuid.New(), "k", documents.CreateCommand{Filename: "doc.pdf"})
			time.Sleep(time.Millisecond)
		}

		page, total := registry.Page(0, 3)
		if total != 5 {
			t.Errorf("total = %d, want 5", total)
		}
		if len(page) != 3 {
			t.Fatalf("page = %d entries, want 3", len(page))
		}
		for i := 1; i < len(page); i++ {
			if page[i].UploadedAt.After(page[i-1].UploadedAt) {
				t.Error("page not sorted newest first")
			}
		}
	})

	t.Run("offset past the end yields an empty page", func(t *testing.T) {
		registry := documents.NewRegistry()
		registry.Create(uuid.New(), "k", documents.CreateCommand{Filename: "doc.pdf"})

		page, total := registry.Page(10, 5)
		if total != 1 || len(page) != 0 {
			t.Errorf("page = %d entries, total = %d", len(page), total)
		}
	})
}
