package handlers

import (
	"net/http"
	"time"

	"pdfchat/internal/contextutil"
	"pdfchat/internal/storage"
)

// DocumentsHandler lists the ingested documents.
type DocumentsHandler struct {
	documents storage.DocumentStore
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(documents storage.DocumentStore) *DocumentsHandler {
	return &DocumentsHandler{documents: documents}
}

// DocumentResponse represents one ingested document.
type DocumentResponse struct {
	ID        string `json:"id"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Pages     int    `json:"pages"`
	Chunks    int    `json:"chunks"`
	UpdatedAt string `json:"updated_at"`
}

// DocumentsResponse represents the document list payload.
type DocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ServeHTTP lists all documents in the registry, most recently updated first.
func (h *DocumentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	records, err := h.documents.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list documents", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	docs := make([]DocumentResponse, 0, len(records))
	for _, record := range records {
		docs = append(docs, DocumentResponse{
			ID:        record.ID,
			Filename:  record.Filename,
			SizeBytes: record.SizeBytes,
			Pages:     record.Pages,
			Chunks:    record.Chunks,
			UpdatedAt: record.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, DocumentsResponse{Documents: docs})
}
