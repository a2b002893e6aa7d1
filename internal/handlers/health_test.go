package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"briefly-ai/internal/handlers"
	vectormocks "briefly-ai/internal/vectorstore/mocks"
)

type fakeHealthChecker struct {
	healthy bool
}

func (f *fakeHealthChecker) HealthCheck(ctx context.Context) bool {
	return f.healthy
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name          string
		collectionOK  bool
		collectionErr error
		ollamaOK      bool
		wantStatus    int
		wantOverall   string
	}{
		{
			name:         "all healthy",
			collectionOK: true,
			ollamaOK:     true,
			wantStatus:   http.StatusOK,
			wantOverall:  "healthy",
		},
		{
			name:         "ollama down",
			collectionOK: true,
			ollamaOK:     false,
			wantStatus:   http.StatusOK,
			wantOverall:  "degraded",
		},
		{
			name:         "collection missing",
			collectionOK: false,
			ollamaOK:     true,
			wantStatus:   http.StatusServiceUnavailable,
			wantOverall:  "unhealthy",
		},
		{
			name:          "vector store unreachable",
			collectionErr: errors.New("connection refused"),
			ollamaOK:      true,
			wantStatus:    http.StatusServiceUnavailable,
			wantOverall:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vectors := vectormocks.NewMockVectorStore(ctrl)
			vectors.EXPECT().CollectionExists(gomock.Any(), "customers").Return(tt.collectionOK, tt.collectionErr)

			handler := handlers.NewHealthHandler(vectors, &fakeHealthChecker{healthy: tt.ollamaOK}, "customers")

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp handlers.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantOverall {
				t.Errorf("overall status = %q, want %q", resp.Status, tt.wantOverall)
			}
			if resp.Timestamp == "" {
				t.Error("timestamp should be set")
			}
		})
	}
}

func TestHealthHandlerMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	vectors := vectormocks.NewMockVectorStore(ctrl)
	handler := handlers.NewHealthHandler(vectors, &fakeHealthChecker{healthy: true}, "customers")

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
