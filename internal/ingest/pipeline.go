package ingest

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"pdfchat/internal/contextutil"
	"pdfchat/internal/extractor"
	"pdfchat/internal/service"
	"pdfchat/internal/splitter"
	"pdfchat/internal/storage"
	"pdfchat/internal/vectorstore"
)

// Extractor extracts text from a persisted document file.
type Extractor interface {
	Extract(path string) (*extractor.Extraction, error)
}

// Embedder generates one embedding vector per input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Result reports the outcome of ingesting a document.
type Result struct {
	Filename string
	Chunks   int
	Status   string
}

// Pipeline ingests an uploaded PDF: persist the raw bytes, extract text,
// split into chunks, embed, and store vectors plus a registry record.
type Pipeline struct {
	uploadDir   string
	extractor   Extractor
	splitter    *splitter.Splitter
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	documents   storage.DocumentStore
	collection  string
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	uploadDir string,
	ext Extractor,
	split *splitter.Splitter,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	documents storage.DocumentStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		uploadDir:   uploadDir,
		extractor:   ext,
		splitter:    split,
		embedder:    embedder,
		vectorStore: vectorStore,
		documents:   documents,
		collection:  collection,
	}
}

// Ingest runs the full ingestion pipeline for one uploaded document.
// Each step depends on the previous one succeeding; any failure aborts the
// pipeline and surfaces to the caller. There is no rollback: a failure after
// the file write can leave an orphaned file, and a failure during the vector
// write can leave a partially indexed document. All documents go into a single
// shared collection, so later questions can draw on any prior upload.
func (p *Pipeline) Ingest(ctx context.Context, filename string, content []byte) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Strip any path components from the client-supplied name. A repeated
	// filename overwrites the previous upload on disk.
	filename = filepath.Base(filename)
	path := filepath.Join(p.uploadDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to save upload: %v", service.ErrStorage, err)
	}
	logger.DebugContext(ctx, "saved upload", "path", path, "size", len(content))

	extraction, err := p.extractor.Extract(path)
	if err != nil {
		return nil, err
	}

	chunks := p.splitter.Split(extraction.Text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: document contains no extractable text", service.ErrExtraction)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, service.WrapError(err, "failed to embed chunks")
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("%w: embedding count mismatch: expected %d, got %d",
			service.ErrGeneration, len(chunks), len(embeddings))
	}

	// Keep the registry ID stable across re-uploads of the same filename.
	// Vectors are append-only either way: re-ingesting adds a second set of
	// points rather than replacing the first.
	docID := uuid.New().String()
	if existing, err := p.documents.GetByFilename(ctx, filename); err == nil {
		docID = existing.ID
	} else if err != storage.ErrNotFound {
		return nil, fmt.Errorf("%w: failed to check document registry: %v", service.ErrStorage, err)
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = vectorstore.Point{
			ID:  uuid.New().String(),
			Vec: embeddings[i],
			Meta: map[string]any{
				"document_id": docID,
				"filename":    filename,
				"chunk_index": chunk.Index,
				"text":        chunk.Text,
			},
		}
	}

	if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
		return nil, service.WrapError(err, "failed to store vectors")
	}

	hash := sha256.Sum256(content)
	record := &storage.DocumentRecord{
		ID:        docID,
		Filename:  filename,
		SizeBytes: int64(len(content)),
		Pages:     extraction.Pages,
		Chunks:    len(chunks),
		Hash:      fmt.Sprintf("%x", hash),
	}
	if err := p.documents.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: failed to record document: %v", service.ErrStorage, err)
	}

	logger.InfoContext(ctx, "ingested document", "filename", filename, "pages", extraction.Pages, "chunks", len(chunks))

	return &Result{
		Filename: filename,
		Chunks:   len(chunks),
		Status:   "Learned",
	}, nil
}
