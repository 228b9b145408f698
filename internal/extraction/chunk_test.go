package extraction_test

import (
	"strings"
	"testing"

	"github.com/docpipe/triage/internal/extraction"
)

func TestSplit(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := extraction.Split("hello world", 100, 10)
		if len(chunks) != 1 || chunks[0] != "hello world" {
			t.Errorf("chunks = %v", chunks)
		}
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		if chunks := extraction.Split("", 100, 10); chunks != nil {
			t.Errorf("chunks = %v, want nil", chunks)
		}
	})

	t.Run("long text overlaps between chunks", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 10) // 100 runes
		chunks := extraction.Split(text, 40, 10)

		if len(chunks) < 3 {
			t.Fatalf("chunks = %d, want at least 3", len(chunks))
		}
		for i, chunk := range chunks[:len(chunks)-1] {
			if len([]rune(chunk)) != 40 {
				t.Errorf("chunk %d = %d runes, want 40", i, len([]rune(chunk)))
			}
		}
		// The tail of one chunk opens the next.
		first := []rune(chunks[0])
		second := []rune(chunks[1])
		if string(first[30:]) != string(second[:10]) {
			t.Error("overlap not carried between consecutive chunks")
		}
	})

	t.Run("multi-byte runes never split", func(t *testing.T) {
		text := strings.Repeat("日本語テキスト", 20)
		for _, chunk := range extraction.Split(text, 15, 3) {
			if !strings.HasPrefix(text, string([]rune(chunk)[:1])) && !strings.Contains(text, chunk) {
				t.Errorf("chunk %q is not a substring of the input", chunk)
			}
		}
	})

	t.Run("overlap at or above size is clamped", func(t *testing.T) {
		text := strings.Repeat("x", 100)
		chunks := extraction.Split(text, 10, 10)
		if len(chunks) == 0 {
			t.Fatal("no chunks returned")
		}
		// Clamped overlap must still advance the window.
		if len(chunks) > 100 {
			t.Errorf("chunks = %d, window never advanced", len(chunks))
		}
	})
}
