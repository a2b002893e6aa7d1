package summarizer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"briefly-ai/internal/summarizer"
	"briefly-ai/internal/summarizer/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Suppress pipeline logging during tests.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// threeChunkText is 30 runes with no boundaries; a window of 10 and no
// overlap splits it into exactly three chunks.
const threeChunkText = "abcdefghijklmnopqrstuvwxyz0123"

func newSummarizer(t *testing.T, gen summarizer.Generator, windowSize, overlap, workers int) *summarizer.Summarizer {
	t.Helper()
	chunker, err := summarizer.NewChunker(windowSize, overlap)
	if err != nil {
		t.Fatalf("NewChunker() unexpected error: %v", err)
	}
	return summarizer.New(gen, chunker, workers)
}

func contains(substr string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.Contains(s, substr)
	})
}

func TestSummarize_SingleChunkSkipsMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	s := newSummarizer(t, gen, 1000, 100, 1)

	// Exactly one chunk call and one highlight call; ctrl.Finish fails the
	// test if a merge call sneaks in.
	gomock.InOrder(
		gen.EXPECT().
			Generate(gomock.Any(), contains("a small document"), "").
			Return("the chunk summary", nil),
		gen.EXPECT().
			Generate(gomock.Any(), contains("the chunk summary"), gomock.Not(gomock.Eq(""))).
			Return("- one\n- two", nil),
	)

	result, err := s.Summarize(context.Background(), "a small document")
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if result.Summary != "the chunk summary" {
		t.Errorf("Summary = %q, want the single chunk summary verbatim", result.Summary)
	}
	if len(result.Highlights) != 2 || result.Highlights[0] != "one" {
		t.Errorf("Highlights = %v", result.Highlights)
	}
}

func TestSummarize_ThreeChunksCallSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	s := newSummarizer(t, gen, 10, 0, 1)

	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), contains("abcdefghij"), "").Return("summary one", nil),
		gen.EXPECT().Generate(gomock.Any(), contains("klmnopqrst"), "").Return("summary two", nil),
		gen.EXPECT().Generate(gomock.Any(), contains("uvwxyz0123"), "").Return("summary three", nil),
		gen.EXPECT().
			Generate(gomock.Any(), contains("1. summary one"), gomock.Not(gomock.Eq(""))).
			Return("a merged summary", nil),
		gen.EXPECT().
			Generate(gomock.Any(), contains("a merged summary"), gomock.Not(gomock.Eq(""))).
			Return("- insight", nil),
	)

	result, err := s.Summarize(context.Background(), threeChunkText)
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if result.Summary != "a merged summary" {
		t.Errorf("Summary = %q, want a merged summary", result.Summary)
	}
}

func TestSummarize_MergePreservesChunkOrderUnderConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	s := newSummarizer(t, gen, 10, 0, 3)

	// Chunk summaries may be produced in any order; echo the chunk back so
	// the merge prompt reveals the assembled ordering.
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, prompt, _ string) (string, error) {
			for _, chunk := range []string{"abcdefghij", "klmnopqrst", "uvwxyz0123"} {
				if strings.Contains(prompt, chunk) {
					return "sum:" + chunk, nil
				}
			}
			t.Errorf("unexpected chunk prompt: %q", prompt)
			return "", errors.New("unexpected prompt")
		}).
		Times(3)

	var mergePrompt string
	gen.EXPECT().
		Generate(gomock.Any(), contains("Section summaries"), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt, _ string) (string, error) {
			mergePrompt = prompt
			return "merged", nil
		})
	gen.EXPECT().
		Generate(gomock.Any(), contains("merged"), gomock.Any()).
		Return("- insight", nil)

	if _, err := s.Summarize(context.Background(), threeChunkText); err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}

	first := strings.Index(mergePrompt, "1. sum:abcdefghij")
	second := strings.Index(mergePrompt, "2. sum:klmnopqrst")
	third := strings.Index(mergePrompt, "3. sum:uvwxyz0123")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Errorf("merge prompt does not list summaries in document order:\n%s", mergePrompt)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	s := newSummarizer(t, gen, 100, 10, 1)

	_, err := s.Summarize(context.Background(), "   \n  ")
	if !errors.Is(err, summarizer.ErrEmptyInput) {
		t.Errorf("Summarize() error = %v, want ErrEmptyInput", err)
	}
}

func TestSummarize_StageFailures(t *testing.T) {
	genFailure := errors.New("generation exhausted retries")

	tests := []struct {
		name           string
		setup          func(gen *mocks.MockGenerator)
		wantStage      summarizer.Stage
		wantChunkIndex int
	}{
		{
			name: "chunk summarization fails",
			setup: func(gen *mocks.MockGenerator) {
				gen.EXPECT().Generate(gomock.Any(), contains("abcdefghij"), "").Return("one", nil)
				gen.EXPECT().Generate(gomock.Any(), contains("klmnopqrst"), "").Return("", genFailure)
			},
			wantStage:      summarizer.StageSummarizeChunks,
			wantChunkIndex: 1,
		},
		{
			name: "merge fails",
			setup: func(gen *mocks.MockGenerator) {
				gen.EXPECT().Generate(gomock.Any(), gomock.Any(), "").Return("a summary", nil).Times(3)
				gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", genFailure)
			},
			wantStage:      summarizer.StageMerge,
			wantChunkIndex: -1,
		},
		{
			name: "highlight extraction fails",
			setup: func(gen *mocks.MockGenerator) {
				gen.EXPECT().Generate(gomock.Any(), gomock.Any(), "").Return("a summary", nil).Times(3)
				gen.EXPECT().Generate(gomock.Any(), contains("Section summaries"), gomock.Any()).Return("merged", nil)
				gen.EXPECT().Generate(gomock.Any(), contains("merged"), gomock.Any()).Return("", genFailure)
			},
			wantStage:      summarizer.StageHighlights,
			wantChunkIndex: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gen := mocks.NewMockGenerator(ctrl)
			tt.setup(gen)
			s := newSummarizer(t, gen, 10, 0, 1)

			_, err := s.Summarize(context.Background(), threeChunkText)
			if err == nil {
				t.Fatal("Summarize() expected error, got nil")
			}

			var stageErr *summarizer.StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("Summarize() error type = %T, want *StageError", err)
			}
			if stageErr.Stage != tt.wantStage {
				t.Errorf("Stage = %v, want %v", stageErr.Stage, tt.wantStage)
			}
			if stageErr.ChunkIndex != tt.wantChunkIndex {
				t.Errorf("ChunkIndex = %d, want %d", stageErr.ChunkIndex, tt.wantChunkIndex)
			}
			if !errors.Is(err, genFailure) {
				t.Errorf("StageError does not wrap the generation failure: %v", err)
			}
		})
	}
}
