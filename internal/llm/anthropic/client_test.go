package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopsense/shopsense/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReplySuccess(t *testing.T) {
	var receivedKey string
	var receivedSystem string
	var receivedRoles []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		receivedKey = req.Header.Get("x-api-key")
		var body struct {
			System   string `json:"system"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		receivedSystem = body.System
		for _, m := range body.Messages {
			receivedRoles = append(receivedRoles, m.Role)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "Here are some picks."},
			},
		})
	}))
	defer server.Close()

	client := New(Config{APIKey: "secret", BaseURL: server.URL}, discardLogger())

	reply, err := client.Reply(context.Background(), llm.MessageInput{
		Text:         "show me laptops",
		SystemPrompt: "You are a shopping assistant",
		History: []llm.Message{
			{Role: llm.RoleSystem, Content: "ignore me"},
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply != "Here are some picks." {
		t.Fatalf("unexpected reply: %s", reply)
	}
	if receivedKey != "secret" {
		t.Fatalf("unexpected api key header: %s", receivedKey)
	}
	if receivedSystem != "You are a shopping assistant" {
		t.Fatalf("system prompt not sent as top-level param: %q", receivedSystem)
	}
	// System-role history entries must not leak into messages.
	for _, role := range receivedRoles {
		if role == llm.RoleSystem {
			t.Fatalf("system role found in messages: %v", receivedRoles)
		}
	}
	if len(receivedRoles) != 3 {
		t.Fatalf("expected history pair plus user message, got %v", receivedRoles)
	}
}

func TestReplyRequiresAPIKey(t *testing.T) {
	client := New(Config{}, nil)
	_, err := client.Reply(context.Background(), llm.MessageInput{Text: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "missing Anthropic API key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReplyPicksFirstTextBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "tool_use", "text": ""},
				{"type": "text", "text": "the actual reply"},
			},
		})
	}))
	defer server.Close()

	client := New(Config{APIKey: "secret", BaseURL: server.URL}, discardLogger())

	reply, err := client.Reply(context.Background(), llm.MessageInput{Text: "hi"})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply != "the actual reply" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}
