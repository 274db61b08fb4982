package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"pdfchat/internal/config"
	"pdfchat/internal/extractor"
	"pdfchat/internal/http"
	"pdfchat/internal/ingest"
	"pdfchat/internal/llm"
	"pdfchat/internal/rag"
	"pdfchat/internal/splitter"
	"pdfchat/internal/storage"
	"pdfchat/internal/vectorstore"
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

	documentRepo := storage.NewDocumentRepo(db)

	// Initialize Qdrant vector store
	ctx := context.Background()
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, config.Collection, config.VectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", config.Collection, "vector_size", config.VectorSize)

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, config.EmbeddingModel, config.VectorSize)

	// Create ingestion pipeline
	pipeline := ingest.NewPipeline(
		cfg.UploadDir,
		extractor.NewPDFExtractor(),
		splitter.New(config.ChunkSize, config.ChunkOverlap),
		embedder,
		vectorStore,
		documentRepo,
		config.Collection,
	)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, config.ChatModel)

	// Create RAG engine
	ragEngine := rag.NewEngine(
		embedder,
		vectorStore,
		config.Collection,
		config.TopK,
		llmClient,
	)
	slog.Info("RAG engine initialized", "model", config.ChatModel, "top_k", config.TopK)

	// Create router with dependencies
	deps := &http.Deps{
		Ingestor:  pipeline,
		RAGEngine: ragEngine,
		Documents: documentRepo,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.GroqBaseURL, "model", config.ChatModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
