package storage

import "time"

// DocumentRecord represents an ingested document in the registry.
// One row per filename; re-uploading a document updates the row in place,
// mirroring the overwrite semantics of the upload directory.
type DocumentRecord struct {
	ID        string // UUID
	Filename  string // Original upload filename, unique
	SizeBytes int64  // Size of the uploaded file
	Pages     int    // Page count reported by the extractor
	Chunks    int    // Chunks produced by the last ingestion
	Hash      string // SHA256 hex string of file content
	UpdatedAt time.Time
}
