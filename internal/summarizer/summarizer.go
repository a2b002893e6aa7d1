package summarizer

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_generator.go -package=mocks briefly-ai/internal/summarizer Generator

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"briefly-ai/internal/contextutil"
)

// Generator produces text for a prompt. This interface is defined from the
// summarizer's perspective (consumer-first); internal/llm provides the real
// implementation.
type Generator interface {
	// Generate returns the model's text for the prompt. system may be empty.
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// Result holds the output of one summarization call.
type Result struct {
	// Highlights is an ordered list of at most 5 short insight strings.
	// Order reflects the model's output, not a ranking.
	Highlights []string
	// Summary is the combined detailed summary of the whole document.
	Summary string
}

// Summarizer performs hierarchical summarization: chunk the document,
// summarize each chunk, merge the chunk summaries, extract highlights.
type Summarizer struct {
	generator Generator
	chunker   *Chunker
	workers   int
}

// New creates a Summarizer. workers bounds how many chunk summaries are
// generated concurrently; values below 1 are treated as 1.
func New(generator Generator, chunker *Chunker, workers int) *Summarizer {
	if workers < 1 {
		workers = 1
	}
	return &Summarizer{
		generator: generator,
		chunker:   chunker,
		workers:   workers,
	}
}

// Summarize runs the full pipeline over text and returns highlights plus a
// detailed summary. Any generation failure aborts the call; there is no
// partial-result mode.
func (s *Summarizer) Summarize(ctx context.Context, text string) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	chunks := s.chunker.Chunk(text)
	if len(chunks) == 0 {
		return nil, ErrEmptyInput
	}
	logger.InfoContext(ctx, "text split into chunks", "length", len(text), "chunks", len(chunks))

	summaries, err := s.summarizeChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	combined, err := s.mergeSummaries(ctx, summaries)
	if err != nil {
		return nil, err
	}

	highlights, err := s.extractHighlights(ctx, combined)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "summarization complete", "highlights", len(highlights), "summary_length", len(combined))
	return &Result{Highlights: highlights, Summary: combined}, nil
}

// summarizeChunks produces one summary per chunk. Chunks are processed by a
// bounded worker pool; results land in an index-addressed slice so document
// order is preserved no matter which worker finishes first.
func (s *Summarizer) summarizeChunks(ctx context.Context, chunks []Chunk) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	summaries := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, chunk := range chunks {
		g.Go(func() error {
			// A sibling failure cancels the group; skip work queued behind it.
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.DebugContext(gctx, "summarizing chunk", "chunk", chunk.Index, "total", len(chunks))
			out, err := s.generator.Generate(gctx, fmt.Sprintf(chunkPrompt, chunk.Text), "")
			if err != nil {
				return &StageError{Stage: StageSummarizeChunks, ChunkIndex: chunk.Index, Err: err}
			}
			summaries[chunk.Index] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// mergeSummaries combines chunk summaries into one flowing summary. A single
// summary is returned verbatim: merging it with itself adds nothing and
// wastes a round trip.
func (s *Summarizer) mergeSummaries(ctx context.Context, summaries []string) (string, error) {
	if len(summaries) == 1 {
		return summaries[0], nil
	}

	numbered := make([]string, len(summaries))
	for i, summary := range summaries {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, summary)
	}
	body := strings.Join(numbered, "\n\n")

	combined, err := s.generator.Generate(ctx, fmt.Sprintf(mergePrompt, body), systemMessage)
	if err != nil {
		return "", &StageError{Stage: StageMerge, ChunkIndex: -1, Err: err}
	}
	return combined, nil
}

// extractHighlights asks the model for key insights over the combined
// summary and parses them into a bounded list.
func (s *Summarizer) extractHighlights(ctx context.Context, combined string) ([]string, error) {
	raw, err := s.generator.Generate(ctx, fmt.Sprintf(highlightPrompt, combined), systemMessage)
	if err != nil {
		return nil, &StageError{Stage: StageHighlights, ChunkIndex: -1, Err: err}
	}
	return parseHighlights(raw), nil
}
