package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(apiResponse{OK: true})
	}))
	defer srv.Close()

	c := NewClient("bot-token", "chat-42", WithBaseURL(srv.URL))
	if err := c.SendMessage(context.Background(), "⬇️ New expense:"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotPath != "/botbot-token/sendMessage" {
		t.Errorf("path = %q, want token-scoped sendMessage path", gotPath)
	}
	if gotBody.ChatID != "chat-42" {
		t.Errorf("chat_id = %q, want chat-42", gotBody.ChatID)
	}
	if !strings.Contains(gotBody.Text, "New expense") {
		t.Errorf("text = %q, want the notification text", gotBody.Text)
	}
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(apiResponse{OK: false, Description: "chat not found"})
	}))
	defer srv.Close()

	c := NewClient("t", "c", WithBaseURL(srv.URL))
	err := c.SendMessage(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for ok=false response")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error = %v, want the API description included", err)
	}
}

func TestSendMessage_TransportError(t *testing.T) {
	c := NewClient("t", "c", WithBaseURL("http://127.0.0.1:1"))
	if err := c.SendMessage(context.Background(), "hi"); err == nil {
		t.Fatal("expected transport error")
	}
}
