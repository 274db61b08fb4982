package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pdfchat/internal/rag"
	"pdfchat/internal/service"
)

// mockEngine is a hand-rolled rag.Engine for handler tests.
type mockEngine struct {
	answer rag.Answer
	err    error
	asked  string
	calls  int
}

func (m *mockEngine) Ask(ctx context.Context, question string) (rag.Answer, error) {
	m.calls++
	m.asked = question
	if m.err != nil {
		return rag.Answer{}, m.err
	}
	return m.answer, nil
}

func TestChatHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		engine      *mockEngine
		wantStatus  int
		wantAnswer  string
		wantSources int
	}{
		{
			name: "successful answer",
			body: `{"question": "What is this about?"}`,
			engine: &mockEngine{
				answer: rag.Answer{
					Text:    "It is about revenue.",
					Sources: []string{"Revenue grew...", "Expenses were flat..."},
				},
			},
			wantStatus:  http.StatusOK,
			wantAnswer:  "It is about revenue.",
			wantSources: 2,
		},
		{
			name: "no sources serializes as empty list",
			body: `{"question": "Anything?"}`,
			engine: &mockEngine{
				answer: rag.Answer{Text: "No context available."},
			},
			wantStatus:  http.StatusOK,
			wantAnswer:  "No context available.",
			wantSources: 0,
		},
		{
			name: "empty question",
			body: `{"question": ""}`,
			engine: &mockEngine{
				err: &service.ValidationError{Field: "question", Message: "cannot be empty"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing question field",
			body: `{}`,
			engine: &mockEngine{
				err: &service.ValidationError{Field: "question", Message: "cannot be empty"},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON body",
			body:       `{not json`,
			engine:     &mockEngine{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "generation failure",
			body: `{"question": "What?"}`,
			engine: &mockEngine{
				err: service.WrapError(service.ErrGeneration, "rate limit"),
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "index failure",
			body: `{"question": "What?"}`,
			engine: &mockEngine{
				err: service.WrapError(service.ErrStorage, "qdrant down"),
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChatHandler(tt.engine)

			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %v, want %v (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				var errResp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("error response is not JSON: %v", err)
				}
				if errResp.Error == "" {
					t.Error("error response should have a message")
				}
				return
			}

			var resp ChatResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if resp.Answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", resp.Answer, tt.wantAnswer)
			}
			if resp.Sources == nil {
				t.Error("sources should never be null")
			}
			if len(resp.Sources) != tt.wantSources {
				t.Errorf("sources = %d, want %d", len(resp.Sources), tt.wantSources)
			}
		})
	}
}

func TestChatHandler_ServeHTTP_InvalidBodySkipsEngine(t *testing.T) {
	engine := &mockEngine{}
	handler := NewChatHandler(engine)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if engine.calls != 0 {
		t.Errorf("engine called %d times for invalid body, want 0", engine.calls)
	}
}
