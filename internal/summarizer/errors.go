package summarizer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned at construction time for settings
	// that could never work, such as an overlap wider than the window.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrEmptyInput is returned when chunking yields nothing to summarize.
	ErrEmptyInput = errors.New("no chunks produced from input text")
)

// Stage identifies which step of the summarization pipeline failed.
type Stage string

const (
	StageSummarizeChunks Stage = "summarize_chunks"
	StageMerge           Stage = "merge"
	StageHighlights      Stage = "extract_highlights"
)

// StageError wraps a generation failure with the pipeline stage it occurred
// in. ChunkIndex is set for per-chunk failures and -1 otherwise.
type StageError struct {
	Stage      Stage
	ChunkIndex int
	Err        error
}

func (e *StageError) Error() string {
	if e.ChunkIndex >= 0 {
		return fmt.Sprintf("stage %s failed on chunk %d: %v", e.Stage, e.ChunkIndex, e.Err)
	}
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
