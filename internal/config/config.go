package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Ollama
	OllamaBaseURL  string
	OllamaModel    string
	OllamaTimeout  time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Temperature    float64
	EmbeddingModel string

	// Chunking and summarization
	ChunkSize      int
	ChunkOverlap   int
	SummaryWorkers int

	// Uploads
	MaxFileSizeMB     int
	UploadDir         string
	AllowedExtensions []string

	// Customer store
	DBPath           string
	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int
	SearchTopK       int

	// Server
	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates numeric fields.
// If a .env file exists in the current directory or project root, it will be loaded
// automatically; environment variables already set take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up from the working directory looking for a .env next to go.mod.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:       getEnv("OLLAMA_MODEL", "gpt-oss:20b"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
		UploadDir:         getEnv("UPLOAD_DIR", "./temp/uploads"),
		AllowedExtensions: splitList(getEnv("ALLOWED_EXTENSIONS", "pdf,docx,txt,xlsx,md")),
		DBPath:            getEnv("DB_PATH", "./data/briefly-ai.db"),
		QdrantURL:         getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:  getEnv("QDRANT_COLLECTION", "customers"),
		APIPort:           getEnv("API_PORT", "8000"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.OllamaTimeout, err = getEnvSeconds("OLLAMA_TIMEOUT", 120); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = getEnvInt("OLLAMA_MAX_RETRIES", 1); err != nil {
		return nil, err
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("OLLAMA_MAX_RETRIES must not be negative")
	}
	backoffMS, err := getEnvInt("RETRY_BACKOFF_MS", 500)
	if err != nil {
		return nil, err
	}
	cfg.RetryBackoff = time.Duration(backoffMS) * time.Millisecond
	if cfg.Temperature, err = getEnvFloat("SUMMARY_TEMPERATURE", 0.7); err != nil {
		return nil, err
	}
	if cfg.ChunkSize, err = getEnvInt("CHUNK_SIZE", 3000); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getEnvInt("CHUNK_OVERLAP", 300); err != nil {
		return nil, err
	}
	if cfg.SummaryWorkers, err = getEnvInt("SUMMARY_WORKERS", 2); err != nil {
		return nil, err
	}
	if cfg.SummaryWorkers < 1 {
		return nil, fmt.Errorf("SUMMARY_WORKERS must be at least 1")
	}
	if cfg.MaxFileSizeMB, err = getEnvInt("MAX_FILE_SIZE_MB", 20); err != nil {
		return nil, err
	}
	if cfg.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE_MB must be greater than 0")
	}
	if cfg.QdrantVectorSize, err = getEnvInt("QDRANT_VECTOR_SIZE", 768); err != nil {
		return nil, err
	}
	if cfg.QdrantVectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	if cfg.SearchTopK, err = getEnvInt("RAG_TOP_K", 5); err != nil {
		return nil, err
	}
	if cfg.SearchTopK <= 0 {
		return nil, fmt.Errorf("RAG_TOP_K must be greater than 0")
	}

	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHUNK_SIZE must be greater than 0")
	}
	if cfg.ChunkOverlap < 0 {
		return nil, fmt.Errorf("CHUNK_OVERLAP must not be negative")
	}
	if cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)", cfg.ChunkOverlap, cfg.ChunkSize)
	}

	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn", "warning":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	// Create working directories up front so request handling never has to.
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return v, nil
}

func getEnvSeconds(key string, defaultValue int) (time.Duration, error) {
	v, err := getEnvInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return time.Duration(v) * time.Second, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
