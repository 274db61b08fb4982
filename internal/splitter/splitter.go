package splitter

import (
	"strings"
)

// boundaries lists split-point candidates in order of preference. Each chunk
// tries to end on a paragraph break, then a line break, then a sentence end,
// then a word gap, before falling back to a hard character cut.
var boundaries = []string{"\n\n", "\n", ". ", " "}

// Chunk is a contiguous span of document text.
type Chunk struct {
	Index int    // Position within the document (starts at 0)
	Text  string // Chunk text content
}

// Splitter splits text into fixed-size chunks with overlap between neighbors.
type Splitter struct {
	chunkSize int
	overlap   int
}

// New creates a Splitter. chunkSize is the maximum chunk length in characters,
// overlap the number of characters shared with the previous chunk.
func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &Splitter{
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// Split breaks text into chunks of at most chunkSize characters, each starting
// overlap characters before the end of the previous chunk. Whitespace-only
// input produces no chunks. Sizes are measured in runes so multibyte text is
// never cut mid-character.
func (s *Splitter) Split(text string) []Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	var chunks []Chunk
	start := 0
	index := 0

	for start < len(runes) {
		end := start + s.chunkSize

		if end >= len(runes) {
			chunks = append(chunks, Chunk{
				Index: index,
				Text:  string(runes[start:]),
			})
			break
		}

		splitPoint := s.findSplitPoint(runes, start, end)

		chunks = append(chunks, Chunk{
			Index: index,
			Text:  string(runes[start:splitPoint]),
		})

		start = splitPoint - s.overlap
		index++
	}

	return chunks
}

// findSplitPoint returns the end position for a chunk starting at start.
// It prefers natural boundaries inside the window; a boundary landing inside
// the overlap region would stall the walk, so those fall through to the next
// candidate and ultimately to a hard cut at end.
func (s *Splitter) findSplitPoint(runes []rune, start, end int) int {
	window := string(runes[start:end])
	minPoint := start + s.overlap

	for _, boundary := range boundaries {
		if pos := strings.LastIndex(window, boundary); pos != -1 {
			// pos is a byte offset into window; count runes up to it
			point := start + len([]rune(window[:pos])) + len([]rune(boundary))
			if point > minPoint {
				return point
			}
		}
	}

	return end
}
