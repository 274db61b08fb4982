package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newEmbeddingsServer returns a test server speaking the OpenAI embeddings schema,
// producing vectors of the given size for every input.
func newEmbeddingsServer(t *testing.T, size int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		type embedding struct {
			Object    string    `json:"object"`
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		}
		resp := struct {
			Object string      `json:"object"`
			Data   []embedding `json:"data"`
		}{Object: "list"}

		for i := range req.Input {
			vec := make([]float32, size)
			vec[0] = float32(i + 1)
			resp.Data = append(resp.Data, embedding{Object: "embedding", Index: i, Embedding: vec})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestEmbeddingsClient_EmbedTexts(t *testing.T) {
	server := newEmbeddingsServer(t, 4)
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "test-key", "test-model", 4)

	vectors, err := client.EmbedTexts(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("EmbedTexts() unexpected error: %v", err)
	}

	if len(vectors) != 2 {
		t.Fatalf("EmbedTexts() returned %d vectors, want 2", len(vectors))
	}
	for i, vec := range vectors {
		if len(vec) != 4 {
			t.Errorf("vector %d has size %d, want 4", i, len(vec))
		}
	}
	// Order must follow input order
	if vectors[0][0] != 1 || vectors[1][0] != 2 {
		t.Error("EmbedTexts() vectors not in input order")
	}
}

func TestEmbeddingsClient_EmbedTexts_EmptyInput(t *testing.T) {
	client := NewEmbeddingsClient("http://localhost:1", "test-key", "test-model", 4)

	if _, err := client.EmbedTexts(context.Background(), nil); err == nil {
		t.Error("EmbedTexts() expected error for empty input, got nil")
	}
}

func TestEmbeddingsClient_EmbedTexts_SizeMismatch(t *testing.T) {
	server := newEmbeddingsServer(t, 3)
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "test-key", "test-model", 4)

	if _, err := client.EmbedTexts(context.Background(), []string{"text"}); err == nil {
		t.Error("EmbedTexts() expected error for wrong vector size, got nil")
	}
}

func TestEmbeddingsClient_EmbedTexts_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "test-key", "test-model", 4)

	if _, err := client.EmbedTexts(context.Background(), []string{"text"}); err == nil {
		t.Error("EmbedTexts() expected error for server failure, got nil")
	}
}
