package gemini_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sehrimilan/pkg/gemini"
)

func sseChunk(text string) string {
	return fmt.Sprintf("data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":%q}]}}]}\n\n", text)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":streamGenerateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" && r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"bad key","status":"UNAUTHENTICATED"}}`))
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(sseChunk("# Day 1\n")))
		w.Write([]byte(sseChunk("- Dates")))
	}))
}

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(context.Background(), gemini.Config{}); err == nil {
		t.Fatal("expected error without api key")
	}

	cfg := gemini.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("model = %q, want default", cfg.Model)
	}
}

func TestStream(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, err := gemini.New(ctx, gemini.Config{APIKey: "test-api-key", BaseURL: srv.URL, HTTPClient: srv.Client()})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		var got strings.Builder
		if err := c.Stream(ctx, "plan", func(f string) error {
			got.WriteString(f)
			return nil
		}); err != nil {
			t.Fatalf("Stream: %v", err)
		}
		if got.String() != "# Day 1\n- Dates" {
			t.Errorf("got %q", got.String())
		}
	})

	t.Run("api error", func(t *testing.T) {
		c, err := gemini.New(ctx, gemini.Config{APIKey: "wrong", BaseURL: srv.URL, HTTPClient: srv.Client()})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := c.Stream(ctx, "plan", func(string) error { return nil }); err == nil {
			t.Fatal("expected error")
		}
	})
}
