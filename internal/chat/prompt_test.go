package chat_test

import (
	"fmt"
	"strings"
	"testing"

	"sehrimilan/internal/chat"
)

func TestTranscript(t *testing.T) {
	t.Run("empty starts with greeting", func(t *testing.T) {
		got := chat.Transcript(nil)
		if got != "Assistant: "+chat.Greeting {
			t.Errorf("got %q", got)
		}
	})

	t.Run("roles", func(t *testing.T) {
		got := chat.Transcript([]chat.Message{
			{Role: chat.RoleAssistant, Content: "hi"},
			{Role: chat.RoleUser, Content: "dates?"},
		})
		want := "Assistant: hi\nUser: dates?"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps the latest messages", func(t *testing.T) {
		history := make([]chat.Message, chat.MaxHistory+5)
		for i := range history {
			history[i] = chat.Message{Role: chat.RoleUser, Content: fmt.Sprintf("m%d", i)}
		}
		lines := strings.Split(chat.Transcript(history), "\n")
		if len(lines) != chat.MaxHistory {
			t.Fatalf("lines = %d, want %d", len(lines), chat.MaxHistory)
		}
		if lines[0] != "User: m5" {
			t.Errorf("first = %q", lines[0])
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	got := chat.BuildPrompt("What for suhoor?", nil)
	if !strings.HasPrefix(got, "You are Nur") {
		t.Errorf("missing system prompt: %q", got[:40])
	}
	if !strings.Contains(got, "Chat History:\nAssistant: ") {
		t.Error("missing history block")
	}
	if !strings.HasSuffix(got, "\n\nUser: What for suhoor?\n\nAssistant:") {
		t.Errorf("bad tail: %q", got[len(got)-50:])
	}
}
