package rag

// Answer is the result of a RAG query: the generated text plus the retrieved
// source excerpts that grounded it, in retrieval rank order.
type Answer struct {
	Text    string
	Sources []string
}
