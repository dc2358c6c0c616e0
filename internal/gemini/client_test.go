package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-1.5-flash:generateContent") {
			t.Errorf("request path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "k" {
			t.Errorf("key = %q, want %q", got, "k")
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := req["contents"]; !ok {
			t.Error("request body missing contents")
		}

		_, _ = w.Write([]byte(`{
  "candidates": [
    {"content": {"parts": [{"text": "Arsenal win, "}, {"text": "medium confidence."}]}}
  ]
}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "", time.Second)
	got, err := c.Generate(context.Background(), "analyze this", 512)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Arsenal win, medium confidence." {
		t.Errorf("Generate() = %q, want joined candidate parts", got)
	}
}

func TestGenerate_Unconfigured(t *testing.T) {
	c := NewClient("", "", "", time.Second)
	if c.Configured() {
		t.Error("Configured() = true without an API key")
	}
	if _, err := c.Generate(context.Background(), "p", 10); err == nil {
		t.Error("Generate() without an API key error = nil, want an error")
	}
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "", time.Second)
	if _, err := c.Generate(context.Background(), "p", 10); err == nil {
		t.Error("Generate() on 429 error = nil, want an error")
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "", time.Second)
	if _, err := c.Generate(context.Background(), "p", 10); err == nil {
		t.Error("Generate() with no candidates error = nil, want an error")
	}
}
