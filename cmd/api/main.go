package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"strings"
	"time"

	"briefly-ai/internal/config"
	"briefly-ai/internal/extract"
	"briefly-ai/internal/files"
	"briefly-ai/internal/http"
	"briefly-ai/internal/llm"
	"briefly-ai/internal/service"
	"briefly-ai/internal/storage"
	"briefly-ai/internal/summarizer"
	"briefly-ai/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	customerRepo := storage.NewCustomerRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	embedder := llm.NewEmbeddingsClient(cfg.OllamaBaseURL, cfg.EmbeddingModel, cfg.QdrantVectorSize, cfg.OllamaTimeout)

	// Create LLM client for summarization
	llmClient := llm.NewClient(llm.Config{
		BaseURL:      cfg.OllamaBaseURL,
		Model:        cfg.OllamaModel,
		Timeout:      cfg.OllamaTimeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Temperature:  cfg.Temperature,
	})

	// Probe Ollama so misconfiguration shows up at startup instead of on the
	// first request. The server still starts if Ollama is down.
	if llmClient.HealthCheck(ctx) {
		models := llmClient.ListModels(ctx)
		slog.Info("Ollama reachable", "base_url", cfg.OllamaBaseURL, "models", len(models))
		if len(models) > 0 && !containsModel(models, cfg.OllamaModel) {
			slog.Warn("Configured model not found in Ollama", "model", cfg.OllamaModel, "available", strings.Join(models, ", "))
		}
	} else {
		slog.Warn("Ollama is not reachable, summarization will fail until it is up", "base_url", cfg.OllamaBaseURL)
	}

	// File store for uploads, with periodic cleanup of stale temp files
	uploadStore, err := files.NewStore(cfg.UploadDir, cfg.MaxFileSizeBytes())
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			uploadStore.CleanupOld(context.Background(), 24*time.Hour)
		}
	}()

	chunker, err := summarizer.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("Failed to configure chunker: %v", err)
	}
	docSummarizer := summarizer.New(llmClient, chunker, cfg.SummaryWorkers)

	summaryService := service.NewSummaryService(
		uploadStore,
		extract.New(),
		docSummarizer,
		cfg.OllamaModel,
		cfg.AllowedExtensions,
	)
	customerService := service.NewCustomerService(
		customerRepo,
		vectorStore,
		embedder,
		cfg.QdrantCollection,
		cfg.SearchTopK,
	)

	deps := &http.Deps{
		SummaryService:  summaryService,
		CustomerService: customerService,
		VectorStore:     vectorStore,
		Generator:       llmClient,
		CollectionName:  cfg.QdrantCollection,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Ollama configuration", "base_url", cfg.OllamaBaseURL, "model", cfg.OllamaModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

func containsModel(models []string, name string) bool {
	for _, m := range models {
		if m == name || strings.SplitN(m, ":", 2)[0] == strings.SplitN(name, ":", 2)[0] {
			return true
		}
	}
	return false
}
