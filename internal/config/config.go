package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Pipeline parameters are deliberate constants, not configuration: changing
// the chunk geometry or the vector size invalidates everything already stored
// in the index.
const (
	// ChunkSize is the maximum chunk length in characters.
	ChunkSize = 1000
	// ChunkOverlap is the number of characters shared between adjacent chunks.
	ChunkOverlap = 200
	// TopK is the number of chunks retrieved per question.
	TopK = 3
	// Collection is the Qdrant collection shared by all ingested documents.
	Collection = "pdf_chat"
	// VectorSize must match the embedding model's output dimension.
	VectorSize = 1536
	// ChatModel is the Groq model used for answer generation.
	ChatModel = "llama-3.1-8b-instant"
	// EmbeddingModel is the model used for chunk and question embeddings.
	EmbeddingModel = "text-embedding-3-small"
)

// Config holds all configuration for the application.
type Config struct {
	GroqAPIKey       string
	GroqBaseURL      string
	EmbeddingBaseURL string
	EmbeddingAPIKey  string
	UploadDir        string
	DBPath           string
	QdrantURL        string
	APIPort          string
	LogLevel         slog.Level
	LogFormat        string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded
// automatically. Environment variables already set take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up to find a .env next to go.mod when running from a subdirectory
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
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", "http://localhost:8081/v1"),
		EmbeddingAPIKey:  getEnv("EMBEDDING_API_KEY", "dummy-key"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		DBPath:           getEnv("DB_PATH", "./data/pdfchat.db"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		APIPort:          getEnv("API_PORT", "8000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	// Create the upload and data directories up front so the pipelines never
	// hit a missing directory on first write.
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a log level string to slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn or error", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
