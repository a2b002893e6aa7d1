package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_summary_deps.go -package=mocks briefly-ai/internal/service DocumentSummarizer,TextExtractor,UploadStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_summary_service.go -package=mocks -mock_names=SummaryService=MockSummaryService briefly-ai/internal/service SummaryService

import (
	"context"
	"errors"
	"io"
	"math"
	"time"

	"briefly-ai/internal/contextutil"
	"briefly-ai/internal/files"
	"briefly-ai/internal/summarizer"
)

// minContentLength is the minimum number of characters a document must
// yield after extraction to be worth summarizing.
const minContentLength = 50

// DocumentSummarizer produces a summary and highlights for a piece of text.
// This interface is defined from the service layer's perspective (consumer-first).
type DocumentSummarizer interface {
	Summarize(ctx context.Context, text string) (*summarizer.Result, error)
}

// TextExtractor extracts plain text from a saved file.
type TextExtractor interface {
	Extract(path, fileType string) (string, error)
}

// UploadStore persists uploads to temporary files.
type UploadStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
	VerifyContent(path, fileType string) error
	Delete(ctx context.Context, path string)
}

// SummarizeRequest represents a document summarization request in the domain layer.
type SummarizeRequest struct {
	FileName string
	Content  io.Reader
}

// SummarizeResult represents the outcome of summarizing one document.
type SummarizeResult struct {
	FileName          string
	FileType          string
	SummaryShort      []string
	SummaryDetailed   string
	Model             string
	ProcessingTimeSec float64
}

// SummaryService provides document summarization.
type SummaryService interface {
	// SummarizeDocument validates, extracts, and summarizes an uploaded document.
	SummarizeDocument(ctx context.Context, req SummarizeRequest) (SummarizeResult, error)
}

// summaryService implements SummaryService.
type summaryService struct {
	uploads      UploadStore
	extractor    TextExtractor
	summarizer   DocumentSummarizer
	model        string
	allowedTypes []string
}

// NewSummaryService creates a new SummaryService. model is the name reported
// in results and allowedTypes is the list of accepted file extensions.
func NewSummaryService(uploads UploadStore, extractor TextExtractor, docSummarizer DocumentSummarizer, model string, allowedTypes []string) SummaryService {
	return &summaryService{
		uploads:      uploads,
		extractor:    extractor,
		summarizer:   docSummarizer,
		model:        model,
		allowedTypes: allowedTypes,
	}
}

// SummarizeDocument runs the full pipeline: validate the file name, save the
// upload, verify its content, extract text, and summarize. The temporary
// file is always deleted before returning.
func (s *summaryService) SummarizeDocument(ctx context.Context, req SummarizeRequest) (SummarizeResult, error) {
	logger := contextutil.LoggerFromContext(ctx)
	start := time.Now()

	if req.FileName == "" {
		return SummarizeResult{}, &ValidationError{Field: "file", Message: "file name cannot be empty"}
	}

	fileType := files.FileType(req.FileName)
	if fileType == "" {
		return SummarizeResult{}, &ValidationError{Field: "file", Message: "file has no extension"}
	}
	if !files.Allowed(fileType, s.allowedTypes) {
		return SummarizeResult{}, &ValidationError{Field: "file", Message: "unsupported file type: " + fileType}
	}

	logger.InfoContext(ctx, "processing document", "file_name", req.FileName, "file_type", fileType)

	path, err := s.uploads.Save(ctx, req.Content, req.FileName)
	if err != nil {
		if errors.Is(err, files.ErrTooLarge) {
			return SummarizeResult{}, &ValidationError{Field: "file", Message: "file exceeds maximum allowed size"}
		}
		return SummarizeResult{}, WrapError(err, "failed to save upload")
	}
	defer s.uploads.Delete(ctx, path)

	if err := s.uploads.VerifyContent(path, fileType); err != nil {
		logger.WarnContext(ctx, "upload content check failed", "file_name", req.FileName, "error", err)
		return SummarizeResult{}, &ValidationError{Field: "file", Message: err.Error()}
	}

	text, err := s.extractor.Extract(path, fileType)
	if err != nil {
		logger.WarnContext(ctx, "text extraction failed", "file_name", req.FileName, "error", err)
		return SummarizeResult{}, WrapError(ErrInvalidInput, "text extraction failed: "+err.Error())
	}
	if len(text) < minContentLength {
		return SummarizeResult{}, &ValidationError{Field: "file", Message: "insufficient text content in document"}
	}

	logger.InfoContext(ctx, "extracted text", "file_name", req.FileName, "length", len(text))

	result, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		logger.ErrorContext(ctx, "summarization failed", "file_name", req.FileName, "error", err)
		return SummarizeResult{}, WrapError(ErrExternalService, "summarization failed: "+err.Error())
	}

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100
	logger.InfoContext(ctx, "document summarized", "file_name", req.FileName, "processing_time_sec", elapsed)

	return SummarizeResult{
		FileName:          req.FileName,
		FileType:          fileType,
		SummaryShort:      result.Highlights,
		SummaryDetailed:   result.Summary,
		Model:             s.model,
		ProcessingTimeSec: elapsed,
	}, nil
}
