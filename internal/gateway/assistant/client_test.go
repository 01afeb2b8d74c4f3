package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-medical-assistant/config"
	"ai-medical-assistant/internal/domain/entity"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.AssistantConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestSuggest(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"suggestion": "Take ibuprofen and rest"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	suggestion, err := c.Suggest(context.Background(), entity.ConsultationContext{
		Severity: entity.SeveritySevere,
		Problem:  "headache",
		Symptoms: "pain for 3 days",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion != "Take ibuprofen and rest" {
		t.Fatalf("expected suggestion verbatim, got %q", suggestion)
	}

	if gotPath != "/suggest" {
		t.Fatalf("expected POST /suggest, got %s", gotPath)
	}
	want := map[string]string{"severity": "severe", "problem": "headache", "symptoms": "pain for 3 days"}
	for k, v := range want {
		if gotBody[k] != v {
			t.Fatalf("expected %s=%q on the wire, got %q", k, v, gotBody[k])
		}
	}
}

func TestSuggestNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Suggest(context.Background(), entity.ConsultationContext{}); err == nil {
		t.Fatal("expected an error for non-200 response")
	}
}

func TestChat(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Message string             `json:"message"`
		Context entity.ChatContext `json:"context"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"reply": "Every 6 hours"})
	}))
	defer srv.Close()

	chatCtx := entity.ChatContext{
		Severity:   entity.SeveritySevere,
		Problem:    "headache",
		Symptoms:   "pain for 3 days",
		Suggestion: "Take ibuprofen and rest",
	}

	c := newTestClient(srv.URL)
	reply, err := c.Chat(context.Background(), "how often?", chatCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Every 6 hours" {
		t.Fatalf("expected reply verbatim, got %q", reply)
	}

	if gotPath != "/chat" {
		t.Fatalf("expected POST /chat, got %s", gotPath)
	}
	if gotBody.Message != "how often?" {
		t.Fatalf("expected message on the wire, got %q", gotBody.Message)
	}
	if gotBody.Context != chatCtx {
		t.Fatalf("expected full context on the wire, got %+v", gotBody.Context)
	}
}

func TestChatUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL)
	if _, err := c.Chat(context.Background(), "hi", entity.ChatContext{}); err == nil {
		t.Fatal("expected a transport error")
	}
}
