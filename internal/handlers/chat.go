package handlers

import (
	"encoding/json"
	"net/http"

	"pdfchat/internal/contextutil"
	"pdfchat/internal/rag"
)

// ChatHandler handles HTTP requests for questions against ingested documents.
type ChatHandler struct {
	engine rag.Engine
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(engine rag.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// ServeHTTP answers a question using the RAG engine.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.engine.Ask(ctx, req.Question)
	if err != nil {
		writeServiceError(ctx, w, err, "Failed to answer question")
		return
	}

	sources := answer.Sources
	if sources == nil {
		sources = []string{}
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Answer:  answer.Text,
		Sources: sources,
	})
}
