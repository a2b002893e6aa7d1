package summarizer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func mustChunker(t *testing.T, windowSize, overlap int) *Chunker {
	t.Helper()
	c, err := NewChunker(windowSize, overlap)
	if err != nil {
		t.Fatalf("NewChunker(%d, %d) unexpected error: %v", windowSize, overlap, err)
	}
	return c
}

func TestNewChunker_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		windowSize int
		overlap    int
	}{
		{name: "overlap equals window", windowSize: 100, overlap: 100},
		{name: "overlap exceeds window", windowSize: 100, overlap: 150},
		{name: "zero window", windowSize: 0, overlap: 0},
		{name: "negative overlap", windowSize: 100, overlap: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.windowSize, tt.overlap)
			if err == nil {
				t.Fatal("NewChunker() expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewChunker() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestChunker_ShortTextSingleChunk(t *testing.T) {
	c := mustChunker(t, 100, 10)

	chunks := c.Chunk("  a short document  ")
	if len(chunks) != 1 {
		t.Fatalf("Chunk() returned %d chunks, want 1", len(chunks))
	}
	if chunks[0].Text != "a short document" {
		t.Errorf("chunk text = %q, want trimmed input", chunks[0].Text)
	}
	if chunks[0].Index != 0 {
		t.Errorf("chunk index = %d, want 0", chunks[0].Index)
	}
}

func TestChunker_WhitespaceOnlyYieldsNothing(t *testing.T) {
	c := mustChunker(t, 50, 5)
	if chunks := c.Chunk("   \n\t  "); len(chunks) != 0 {
		t.Errorf("Chunk() returned %d chunks for whitespace input, want 0", len(chunks))
	}
	if chunks := c.Chunk(""); len(chunks) != 0 {
		t.Errorf("Chunk() returned %d chunks for empty input, want 0", len(chunks))
	}
}

func TestChunker_HardCutWithoutBoundaries(t *testing.T) {
	c := mustChunker(t, 10, 0)

	// 30 runes, no sentence boundaries anywhere.
	text := "abcdefghijklmnopqrstuvwxyz0123"
	chunks := c.Chunk(text)

	if len(chunks) != 3 {
		t.Fatalf("Chunk() returned %d chunks, want 3", len(chunks))
	}
	want := []string{"abcdefghij", "klmnopqrst", "uvwxyz0123"}
	for i, w := range want {
		if chunks[i].Text != w {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i].Text, w)
		}
		if chunks[i].Index != i {
			t.Errorf("chunk[%d].Index = %d, want %d", i, chunks[i].Index, i)
		}
	}
}

func TestChunker_PrefersSentenceBoundary(t *testing.T) {
	c := mustChunker(t, 40, 5)

	text := "First sentence ends here. Second part keeps going well past the window size limit."
	chunks := c.Chunk(text)

	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if chunks[0].Text != "First sentence ends here." {
		t.Errorf("chunk[0] = %q, want cut at the sentence boundary", chunks[0].Text)
	}
}

func TestChunker_ParagraphBoundary(t *testing.T) {
	c := mustChunker(t, 40, 5)

	text := "A first paragraph of text\n\nand a second one that pushes the total length past the window"
	chunks := c.Chunk(text)

	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if chunks[0].Text != "A first paragraph of text" {
		t.Errorf("chunk[0] = %q, want cut at the blank line", chunks[0].Text)
	}
}

func TestChunker_Invariants(t *testing.T) {
	const windowSize, overlap = 50, 10
	c := mustChunker(t, windowSize, overlap)

	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	chunks := c.Chunk(text)

	if len(chunks) == 0 {
		t.Fatal("Chunk() returned no chunks")
	}

	maxChunks := utf8.RuneCountInString(text)/(windowSize-overlap) + 1
	if len(chunks) > maxChunks {
		t.Errorf("Chunk() returned %d chunks, bound is %d", len(chunks), maxChunks)
	}

	for i, chunk := range chunks {
		if chunk.Text == "" {
			t.Errorf("chunk[%d] is empty", i)
		}
		if n := utf8.RuneCountInString(chunk.Text); n > windowSize {
			t.Errorf("chunk[%d] has %d runes, exceeds window size %d", i, n, windowSize)
		}
		if chunk.Index != i {
			t.Errorf("chunk[%d].Index = %d", i, chunk.Index)
		}
	}
}

func TestChunker_LosslessWithoutOverlap(t *testing.T) {
	c := mustChunker(t, 30, 0)

	text := "One sentence here. Another sentence there. A third one follows. And then a fourth to round it out."
	chunks := c.Chunk(text)

	var joined strings.Builder
	for _, chunk := range chunks {
		joined.WriteString(chunk.Text)
	}

	stripSpace := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	if stripSpace(joined.String()) != stripSpace(text) {
		t.Errorf("reassembled chunks do not reconstruct input:\n got %q\nwant %q", joined.String(), text)
	}
}

func TestChunker_OverlapCarriesContext(t *testing.T) {
	const windowSize, overlap = 20, 8
	c := mustChunker(t, windowSize, overlap)

	// No boundaries, so every cut is a hard cut and the overlap is exact.
	text := strings.Repeat("x", 15) + strings.Repeat("y", 15) + strings.Repeat("z", 14)
	chunks := c.Chunk(text)

	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1].Text
		tail := prev[len(prev)-overlap:]
		if !strings.HasPrefix(chunks[i].Text, tail) {
			t.Errorf("chunk[%d] does not start with the previous chunk's last %d runes", i, overlap)
		}
	}
}
