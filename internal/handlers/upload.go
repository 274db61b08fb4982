package handlers

import (
	"context"
	"io"
	"net/http"

	"pdfchat/internal/contextutil"
	"pdfchat/internal/ingest"
)

// maxUploadSize caps multipart form memory; larger files spill to temp files.
const maxUploadSize = 32 << 20 // 32 MiB

// Ingestor runs the ingestion pipeline for one uploaded document.
type Ingestor interface {
	Ingest(ctx context.Context, filename string, content []byte) (*ingest.Result, error)
}

// UploadHandler handles HTTP requests for PDF uploads.
type UploadHandler struct {
	pipeline Ingestor
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(pipeline Ingestor) *UploadHandler {
	return &UploadHandler{pipeline: pipeline}
}

// UploadResponse represents the HTTP response payload for uploads.
type UploadResponse struct {
	Filename string `json:"filename"`
	Chunks   int    `json:"chunks"`
	Status   string `json:"status"`
}

// ServeHTTP ingests a PDF from a multipart "file" field.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file field", "error", err)
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	result, err := h.pipeline.Ingest(ctx, header.Filename, content)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to ingest document")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Filename: result.Filename,
		Chunks:   result.Chunks,
		Status:   result.Status,
	})
}
