package openai

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
	var receivedAuth string
	var receivedModel string
	var receivedMessages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		receivedAuth = req.Header.Get("Authorization")
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		receivedModel = body.Model
		receivedMessages = body.Messages
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "What's your budget?"}},
			},
		})
	}))
	defer server.Close()

	client := New(Config{
		APIKey:  "secret",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	}, discardLogger())

	reply, err := client.Reply(context.Background(), llm.MessageInput{
		Text:         "I need a laptop",
		SystemPrompt: "You are a helpful shopping assistant",
		History: []llm.Message{
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
		},
	})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply != "What's your budget?" {
		t.Fatalf("unexpected reply: %s", reply)
	}
	if receivedAuth != "Bearer secret" {
		t.Fatalf("expected auth bearer, got %s", receivedAuth)
	}
	if receivedModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", receivedModel)
	}
	if len(receivedMessages) != 4 {
		t.Fatalf("expected system+history+user, got %d messages", len(receivedMessages))
	}
	if receivedMessages[0].Role != llm.RoleSystem || !strings.Contains(receivedMessages[0].Content, "shopping assistant") {
		t.Fatalf("unexpected system message: %+v", receivedMessages[0])
	}
	if receivedMessages[3].Content != "I need a laptop" {
		t.Fatalf("unexpected final message: %+v", receivedMessages[3])
	}
}

func TestReplyUnavailableWithoutAPIKey(t *testing.T) {
	client := New(Config{BaseURL: "https://api.openai.com/v1"}, nil)
	_, err := client.Reply(context.Background(), llm.MessageInput{Text: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "missing API key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReplyLocalEndpointWithoutAPIKey(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		receivedAuth = req.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "hello from local model"}},
			},
		})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, Model: "qwen2.5:7b-instruct"}, discardLogger())

	reply, err := client.Reply(context.Background(), llm.MessageInput{Text: "hello"})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply != "hello from local model" {
		t.Fatalf("unexpected reply: %s", reply)
	}
	if strings.TrimSpace(receivedAuth) != "" {
		t.Fatalf("expected no authorization header for local endpoint, got %q", receivedAuth)
	}
}

func TestReplyStripsThinkBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "<think>\nreasoning\n</think>\n\nHere are some options."}},
			},
		})
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, Model: "qwen2.5:7b-instruct"}, discardLogger())

	reply, err := client.Reply(context.Background(), llm.MessageInput{Text: "hello"})
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if reply != "Here are some options." {
		t.Fatalf("unexpected sanitized reply: %q", reply)
	}
}

func TestReplyUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL}, discardLogger())

	_, err := client.Reply(context.Background(), llm.MessageInput{Text: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
