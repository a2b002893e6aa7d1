package summarizer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// boundarySearchWindow is how far back from a chunk's candidate end we look
// for a sentence or paragraph boundary, in runes.
const boundarySearchWindow = 200

// sentence endings and blank lines count as natural break points.
var chunkBoundaries = []string{". ", "? ", "! ", "\n\n"}

// Chunk is a contiguous piece of the source document plus its position.
type Chunk struct {
	Index int
	Text  string
}

// Chunker splits long text into overlapping windows so each piece fits a
// model context. Sizes are measured in runes, not bytes.
type Chunker struct {
	windowSize int
	overlap    int
}

// NewChunker creates a chunker with the given window size and overlap.
// Returns ErrInvalidConfiguration unless 0 <= overlap < windowSize, since an
// overlap at least as large as the window would never advance.
func NewChunker(windowSize, overlap int) (*Chunker, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be greater than 0, got %d", ErrInvalidConfiguration, windowSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidConfiguration, overlap)
	}
	if overlap >= windowSize {
		return nil, fmt.Errorf("%w: overlap (%d) must be smaller than window size (%d)", ErrInvalidConfiguration, overlap, windowSize)
	}
	return &Chunker{windowSize: windowSize, overlap: overlap}, nil
}

// Chunk splits text into an ordered sequence of overlapping chunks.
// Text that fits in a single window is returned as one chunk. Longer text is
// cut at the nearest sentence or paragraph boundary within the last
// boundarySearchWindow runes of each window, falling back to a hard cut when
// none is found. Whitespace-only pieces are dropped, so whitespace-only
// input yields no chunks.
func (c *Chunker) Chunk(text string) []Chunk {
	if utf8.RuneCountInString(text) <= c.windowSize {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []Chunk{{Index: 0, Text: trimmed}}
	}

	runes := []rune(text)
	var chunks []Chunk
	start := 0

	for start < len(runes) {
		end := start + c.windowSize

		if end < len(runes) {
			if boundary := findBoundary(runes, start, end); boundary > start {
				end = boundary + 1
			}
		} else {
			end = len(runes)
		}

		if piece := strings.TrimSpace(string(runes[start:end])); piece != "" {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: piece})
		}

		if end >= len(runes) {
			break
		}
		next := end - c.overlap
		if next <= start {
			// Boundary landed so early that the overlap would walk backwards.
			next = end
		}
		start = next
	}

	return chunks
}

// findBoundary returns the rune index of the last natural break point within
// the final boundarySearchWindow runes before end, or -1 when there is none.
func findBoundary(runes []rune, start, end int) int {
	searchStart := end - boundarySearchWindow
	if searchStart < start {
		searchStart = start
	}

	window := string(runes[searchStart:end])
	best := -1
	for _, b := range chunkBoundaries {
		if i := strings.LastIndex(window, b); i > best {
			best = i
		}
	}
	if best < 0 {
		return -1
	}
	// LastIndex reports bytes; translate back to a rune offset.
	return searchStart + utf8.RuneCountInString(window[:best])
}
