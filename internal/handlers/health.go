package handlers

import (
	"net/http"
)

// HealthHandler handles the root health probe.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse represents the health probe response.
type HealthResponse struct {
	Message string `json:"message"`
}

// ServeHTTP answers the health probe. It always returns 200; dependency
// failures surface on the endpoints that use them.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Message: "Talk with PDF Backend (Groq Edition) is running!",
	})
}
