package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func validReply() map[string]interface{} {
	return map[string]interface{}{
		"summary":              "Likely a mild viral infection.",
		"quick_remedy":         []string{"Rest", "Drink plenty of fluids"},
		"suspected_conditions": []string{"Common cold", "Malaria"},
		"confidence_score":     72,
		"urgency_level":        "low",
		"recommendations":      []string{"See a doctor if fever persists"},
		"red_flags":            []string{"Difficulty breathing"},
		"follow_up_timeline":   "3 days",
		"disclaimer":           "AI can be wrong; see a doctor for confirmation.",
		"ask_more":             "Would you like a more detailed explanation?",
	}
}

func modelServer(t *testing.T, reply interface{}, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		content, err := json.Marshal(reply)
		if err != nil {
			t.Fatalf("marshal reply: %v", err)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": string(content)}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint:  endpoint,
		APIKey:    "test-key",
		Model:     "test-model",
		MaxTokens: 1000,
		Timeout:   5 * time.Second,
	})
}

func TestAssess_Success(t *testing.T) {
	var captured chatRequest
	srv := modelServer(t, validReply(), &captured)
	defer srv.Close()

	result, err := newTestClient(srv.URL).Assess(context.Background(), "patient prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary != "Likely a mild viral infection." {
		t.Errorf("unexpected summary: %q", result.Summary)
	}
	if result.ConfidenceScore != 72 {
		t.Errorf("expected confidence 72, got %d", result.ConfidenceScore)
	}
	if result.UrgencyLevel != UrgencyLow {
		t.Errorf("expected urgency low, got %q", result.UrgencyLevel)
	}
	if len(result.SuspectedConditions) != 2 {
		t.Errorf("expected 2 suspected conditions, got %d", len(result.SuspectedConditions))
	}

	if captured.Model != "test-model" {
		t.Errorf("expected model test-model, got %q", captured.Model)
	}
	if captured.MaxCompletionTokens != 1000 {
		t.Errorf("expected max tokens 1000, got %d", captured.MaxCompletionTokens)
	}
	if captured.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %q", captured.ResponseFormat.Type)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	if captured.Messages[1].Content != "patient prompt" {
		t.Errorf("expected prompt as user content, got %q", captured.Messages[1].Content)
	}
}

func TestAssess_MissingSummary(t *testing.T) {
	reply := validReply()
	delete(reply, "summary")
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for missing summary")
	}
}

func TestAssess_MissingSuspectedConditions(t *testing.T) {
	reply := validReply()
	delete(reply, "suspected_conditions")
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for missing suspected_conditions")
	}
}

func TestAssess_ConfidenceOutOfRange(t *testing.T) {
	reply := validReply()
	reply["confidence_score"] = 140
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for out-of-range confidence score")
	}
}

func TestAssess_InvalidUrgency(t *testing.T) {
	reply := validReply()
	reply["urgency_level"] = "critical"
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for invalid urgency level")
	}
}

func TestAssess_MistypedConfidence(t *testing.T) {
	reply := validReply()
	reply["confidence_score"] = "seventy"
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for mistyped confidence score")
	}
}

func TestAssess_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for non-200 upstream status")
	}
}

func TestAssess_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Assess(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestAssess_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(Config{
		Endpoint: srv.URL,
		APIKey:   "k",
		Model:    "m",
		Timeout:  20 * time.Millisecond,
	})
	_, err := client.Assess(context.Background(), "p")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestAssess_DefaultsEmptySlices(t *testing.T) {
	reply := validReply()
	delete(reply, "red_flags")
	delete(reply, "recommendations")
	srv := modelServer(t, reply, nil)
	defer srv.Close()

	result, err := newTestClient(srv.URL).Assess(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedFlags == nil || result.Recommendations == nil {
		t.Error("expected empty slices, got nil")
	}
}
