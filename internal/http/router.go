package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pdfchat/internal/handlers"
	"pdfchat/internal/rag"
	"pdfchat/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Ingestor  handlers.Ingestor
	RAGEngine rag.Engine
	Documents storage.DocumentStore
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	r.Method(http.MethodGet, "/", handlers.NewHealthHandler())
	r.Method(http.MethodPost, "/upload", handlers.NewUploadHandler(deps.Ingestor))
	r.Method(http.MethodPost, "/chat", handlers.NewChatHandler(deps.RAGEngine))
	r.Method(http.MethodGet, "/documents", handlers.NewDocumentsHandler(deps.Documents))

	return r
}
