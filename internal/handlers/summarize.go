package handlers

import (
	"net/http"

	"briefly-ai/internal/contextutil"
	"briefly-ai/internal/service"
)

// SummarizeHandler handles HTTP requests for document summarization.
type SummarizeHandler struct {
	summaryService service.SummaryService
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(summaryService service.SummaryService) *SummarizeHandler {
	return &SummarizeHandler{
		summaryService: summaryService,
	}
}

// SummaryResponse represents the HTTP response payload for a summarized document.
type SummaryResponse struct {
	FileName          string   `json:"file_name"`
	FileType          string   `json:"file_type"`
	SummaryShort      []string `json:"summary_short"`
	SummaryDetailed   string   `json:"summary_detailed"`
	Model             string   `json:"model"`
	ProcessingTimeSec float64  `json:"processing_time_sec"`
}

// ServeHTTP handles multipart document uploads on POST.
func (h *SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file in request", "error", err)
		writeError(w, http.StatusBadRequest, "Request must include a 'file' upload")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := h.summaryService.SummarizeDocument(ctx, service.SummarizeRequest{
		FileName: header.Filename,
		Content:  file,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to summarize document")
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		FileName:          result.FileName,
		FileType:          result.FileType,
		SummaryShort:      result.SummaryShort,
		SummaryDetailed:   result.SummaryDetailed,
		Model:             result.Model,
		ProcessingTimeSec: result.ProcessingTimeSec,
	})
}
