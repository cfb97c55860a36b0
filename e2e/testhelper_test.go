package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/musemind/api/internal/client"
	"github.com/musemind/api/internal/config"
	"github.com/musemind/api/internal/handler"
	"github.com/musemind/api/internal/service"
	"github.com/musemind/api/pkg/response"
)

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

// setupApp creates a Fiber app wired like main.go, with the Gemini client
// pointed at the given configuration (normally an httptest upstream).
func setupApp(t *testing.T, gemini *config.GeminiConfig) *testApp {
	t.Helper()

	validate := validator.New()

	geminiClient := client.NewGeminiClient(gemini)
	poemService := service.NewPoemService(geminiClient)
	poemHandler := handler.NewPoemHandler(poemService, validate)

	app := fiber.New()

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "MuseMind backend is running with Gemini API!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/api/generate-poem", poemHandler.Generate)

	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c)
	})

	return &testApp{app: app}
}

// upstream is an httptest stand-in for the Gemini API with a call counter.
type upstream struct {
	srv   *httptest.Server
	calls int32
}

func newUpstream(t *testing.T, h http.HandlerFunc) *upstream {
	t.Helper()
	u := &upstream{}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.calls, 1)
		h(w, r)
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) callCount() int32 {
	return atomic.LoadInt32(&u.calls)
}

// geminiConfig points the client at the stub with a short test timeout.
func (u *upstream) geminiConfig() *config.GeminiConfig {
	return &config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: u.srv.URL,
		Model:   "gemini-2.0-flash",
		Timeout: 1,
	}
}

// candidatesBody builds a well-formed generateContent response around text.
func candidatesBody(t *testing.T, text string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": text},
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to build candidates body: %v", err)
	}
	return b
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return app.Test(req, -1)
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// assertError checks the flat error body.
func assertError(t *testing.T, resp *http.Response, message string) {
	t.Helper()
	result := parseJSON(t, resp)
	if result["error"] != message {
		t.Errorf("expected error %q, got %v", message, result["error"])
	}
}
