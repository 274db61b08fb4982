package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"pdfchat/internal/service"
)

// EmbeddingsClient generates embeddings through an OpenAI-compatible API.
type EmbeddingsClient struct {
	client       *openai.Client
	model        string
	expectedSize int
}

// NewEmbeddingsClient creates a new embeddings client.
// baseURL points at any OpenAI-compatible embeddings server.
// expectedSize is the vector dimension every returned embedding is validated against;
// it must match the vector size of the Qdrant collection.
func NewEmbeddingsClient(baseURL, apiKey, model string, expectedSize int) *EmbeddingsClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &EmbeddingsClient{
		client:       openai.NewClientWithConfig(cfg),
		model:        model,
		expectedSize: expectedSize,
	}
}

// EmbedTexts generates embeddings for the given texts, one vector per input,
// in input order. The same client embeds both document chunks and questions so
// similarity scores stay comparable.
func (c *EmbeddingsClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("empty input array")
	}

	resp, err := c.client.CreateEmbeddings(ctx, &openai.EmbeddingRequestStrings{
		Input:          texts,
		Model:          openai.EmbeddingModel(c.model),
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
		Dimensions:     c.expectedSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: embedding request failed: %v", service.ErrGeneration, err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", service.ErrGeneration, len(texts), len(resp.Data))
	}

	result := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		if len(data.Embedding) != c.expectedSize {
			return nil, fmt.Errorf("%w: embedding %d has size %d, expected %d",
				service.ErrGeneration, i, len(data.Embedding), c.expectedSize)
		}
		result[i] = data.Embedding
	}

	return result, nil
}
