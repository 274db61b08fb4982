package vectorstore

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestParseQdrantURL(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "valid URL",
			urlStr:   "http://localhost:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "URL with custom port",
			urlStr:   "http://qdrant:9000",
			wantErr:  false,
			wantHost: "qdrant",
			wantPort: 9001,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
		{
			name:     "URL without port",
			urlStr:   "http://localhost",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334,
		},
		{
			name:     "URL without hostname",
			urlStr:   "http://:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, err := parseQdrantURL(tt.urlStr)

			if tt.wantErr {
				if err == nil {
					t.Error("parseQdrantURL() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("parseQdrantURL() unexpected error: %v", err)
			}
			if host != tt.wantHost {
				t.Errorf("host = %v, want %v", host, tt.wantHost)
			}
			if port != tt.wantPort {
				t.Errorf("port = %v, want %v", port, tt.wantPort)
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	payload := map[string]*qdrant.Value{
		"text":        {Kind: &qdrant.Value_StringValue{StringValue: "chunk text"}},
		"chunk_index": {Kind: &qdrant.Value_IntegerValue{IntegerValue: 2}},
		"score":       {Kind: &qdrant.Value_DoubleValue{DoubleValue: 0.5}},
		"pinned":      {Kind: &qdrant.Value_BoolValue{BoolValue: true}},
		"nil_value":   nil,
	}

	meta := convertPayloadToMap(payload)

	if meta["text"] != "chunk text" {
		t.Errorf("text = %v, want chunk text", meta["text"])
	}
	if meta["chunk_index"] != int64(2) {
		t.Errorf("chunk_index = %v, want int64(2)", meta["chunk_index"])
	}
	if meta["score"] != 0.5 {
		t.Errorf("score = %v, want 0.5", meta["score"])
	}
	if meta["pinned"] != true {
		t.Errorf("pinned = %v, want true", meta["pinned"])
	}
	if _, ok := meta["nil_value"]; ok {
		t.Error("nil payload values should be skipped")
	}
}
