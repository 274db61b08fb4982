package rag

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"pdfchat/internal/contextutil"
	"pdfchat/internal/service"
	"pdfchat/internal/vectorstore"
)

// sourcePreviewLen caps each source excerpt in the response. This is purely
// cosmetic: the prompt always receives the full chunk text.
const sourcePreviewLen = 500

const answerPrompt = `You are an assistant that answers questions about an uploaded PDF document. Use the provided context from the document to answer the question. If the context does not contain the answer, say so instead of guessing.

CONTEXT:
{{.Context}}

QUESTION:
{{.Question}}

ANSWER:`

// Embedder generates one embedding vector per input text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces an answer from a prompt via the external language model.
type Generator interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Engine answers questions against the ingested documents.
type Engine interface {
	// Ask embeds the question, retrieves the most similar chunks, and
	// generates an answer grounded in them.
	Ask(ctx context.Context, question string) (Answer, error)
}

// ragEngine implements the Engine interface as an explicit three-step
// pipeline: embed, search, generate.
type ragEngine struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	topK        int
	generator   Generator
	prompt      *template.Template
}

// NewEngine creates a new RAG engine retrieving topK chunks per question.
func NewEngine(
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	topK int,
	generator Generator,
) Engine {
	return &ragEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		topK:        topK,
		generator:   generator,
		prompt:      template.Must(template.New("answerPrompt").Parse(answerPrompt)),
	}
}

// Ask answers a question using RAG.
func (e *ragEngine) Ask(ctx context.Context, question string) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(question) == "" {
		return Answer{}, &service.ValidationError{
			Field:   "question",
			Message: "cannot be empty",
		}
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed question", "error", err)
		return Answer{}, service.WrapError(err, "failed to embed question")
	}
	if len(embeddings) == 0 {
		return Answer{}, fmt.Errorf("%w: no embedding returned for question", service.ErrGeneration)
	}

	results, err := e.vectorStore.Search(ctx, e.collection, embeddings[0], e.topK)
	if err != nil {
		logger.ErrorContext(ctx, "failed to search index", "error", err)
		return Answer{}, service.WrapError(err, "failed to search index")
	}

	// An empty index yields zero results; the model still gets asked and
	// answers with whatever it can, typically that no context is available.
	contexts := make([]string, 0, len(results))
	for _, result := range results {
		if text, ok := result.Meta["text"].(string); ok && text != "" {
			contexts = append(contexts, text)
		}
	}

	prompt, err := e.buildPrompt(question, contexts)
	if err != nil {
		return Answer{}, service.WrapError(err, "failed to build prompt")
	}

	text, err := e.generator.Chat(ctx, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err)
		return Answer{}, service.WrapError(err, "failed to generate answer")
	}

	sources := make([]string, len(contexts))
	for i, c := range contexts {
		sources[i] = truncateSource(c)
	}

	logger.InfoContext(ctx, "answered question", "retrieved", len(results), "answer_length", len(text))

	return Answer{
		Text:    text,
		Sources: sources,
	}, nil
}

// buildPrompt renders the answer prompt from the question and the full
// retrieved chunk texts.
func (e *ragEngine) buildPrompt(question string, contexts []string) (string, error) {
	var buf bytes.Buffer
	err := e.prompt.Execute(&buf, struct {
		Context  string
		Question string
	}{
		Context:  strings.Join(contexts, "\n\n---\n\n"),
		Question: question,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncateSource caps a source excerpt at sourcePreviewLen characters.
// The ellipsis marker is always appended, even for short excerpts.
func truncateSource(text string) string {
	runes := []rune(text)
	if len(runes) > sourcePreviewLen {
		runes = runes[:sourcePreviewLen]
	}
	return string(runes) + "..."
}
