package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testConfig(baseURL string, maxRetries int) Config {
	return Config{
		BaseURL:      baseURL,
		Model:        "test-model",
		Timeout:      2 * time.Second,
		MaxRetries:   maxRetries,
		RetryBackoff: time.Millisecond,
		Temperature:  0.7,
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(testConfig("http://localhost:11434", 1))
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.Model() != "test-model" {
		t.Errorf("Model() = %v, want test-model", client.Model())
	}
}

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/generate" {
			t.Errorf("expected /api/generate, got %s", r.URL.Path)
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("stream should be disabled")
		}
		if req.Model != "test-model" {
			t.Errorf("model = %v, want test-model", req.Model)
		}
		if req.System != "be helpful" {
			t.Errorf("system = %v, want be helpful", req.System)
		}
		if req.Options.TopP != 0.9 || req.Options.TopK != 40 || req.Options.NumPredict != 512 {
			t.Errorf("unexpected sampling options: %+v", req.Options)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "  a summary  "})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 1))
	text, err := client.Generate(context.Background(), "summarize this", "be helpful")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if text != "a summary" {
		t.Errorf("Generate() = %q, want %q (trimmed)", text, "a summary")
	}
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "third time lucky"})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 2))
	text, err := client.Generate(context.Background(), "prompt", "")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if text != "third time lucky" {
		t.Errorf("Generate() = %q, want third time lucky", text)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("made %d attempts, want 3", got)
	}
}

func TestClient_Generate_ExhaustsRetries(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(w http.ResponseWriter, r *http.Request)
		wantKind   FailureKind
	}{
		{
			name: "server error",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantKind: FailureStatus,
		},
		{
			name: "empty response",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "   \n "})
			},
			wantKind: FailureEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts.Add(1)
				tt.serverResp(w, r)
			}))
			defer server.Close()

			client := NewClient(testConfig(server.URL, 1))
			_, err := client.Generate(context.Background(), "prompt", "")
			if err == nil {
				t.Fatal("Generate() expected error, got nil")
			}

			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("Generate() error type = %T, want *GenerationError", err)
			}
			if genErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", genErr.Kind, tt.wantKind)
			}
			if genErr.Attempts != 2 {
				t.Errorf("Attempts = %d, want 2", genErr.Attempts)
			}
			if got := attempts.Load(); got != 2 {
				t.Errorf("server saw %d attempts, want 2", got)
			}
		})
	}
}

func TestClient_Generate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(GenerateResponse{Response: "too late"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL, 1)
	cfg.Timeout = 20 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.Generate(context.Background(), "prompt", "")
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error type = %T, want *GenerationError", err)
	}
	if genErr.Kind != FailureTimeout {
		t.Errorf("Kind = %v, want %v", genErr.Kind, FailureTimeout)
	}
	if genErr.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", genErr.Attempts)
	}
}

func TestClient_Generate_ConnectionRefused(t *testing.T) {
	// Grab an address with no listener behind it.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(testConfig(url, 0))
	_, err := client.Generate(context.Background(), "prompt", "")
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Generate() error type = %T, want *GenerationError", err)
	}
	if genErr.Kind != FailureConnection {
		t.Errorf("Kind = %v, want %v", genErr.Kind, FailureConnection)
	}
	if genErr.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", genErr.Attempts)
	}
}
