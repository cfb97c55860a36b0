package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/musemind/api/internal/config"
)

func TestHealth(t *testing.T) {
	ta := setupApp(t, &config.GeminiConfig{})

	resp, err := doRequest(ta.app, http.MethodGet, "/api/health", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assertStatus(t, resp, http.StatusOK)

	result := parseJSON(t, resp)
	if result["status"] != "ok" {
		t.Errorf("expected status ok, got %v", result["status"])
	}
	if result["message"] == "" || result["message"] == nil {
		t.Error("expected a message in health response")
	}
	ts, ok := result["timestamp"].(string)
	if !ok {
		t.Fatal("expected a timestamp string")
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}
