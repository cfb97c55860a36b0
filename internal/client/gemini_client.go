package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/musemind/api/internal/config"
)

// GeminiClient handles communication with the Gemini generateContent API
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// generateContentRequest represents the request body for content generation
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateContentResponse mirrors the slice of the Gemini response this
// service reads. Pointer fields keep absent/null segments distinguishable
// from empty ones.
type generateContentResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30
	}
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// GenerateContent sends a single generateContent request and returns the
// generated text. Exactly one upstream call per invocation; no retries.
// Fixed sampling configuration: temperature 0.9, topK 40, topP 0.95,
// maxOutputTokens 1024.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.9,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// Header auth keeps the key out of URLs and access logs
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), 512),
		}
	}

	return extractText(respBody)
}

// IsConfigured returns true if the client has valid configuration
func (c *GeminiClient) IsConfigured() bool {
	return c.apiKey != ""
}

// extractText walks candidates[0].content.parts[0].text. Any missing, null,
// or wrong-shaped segment is a data-shape error, never a panic.
func extractText(body []byte) (string, error) {
	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}

	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrUnexpectedShape)
	}
	candidate := parsed.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no parts", ErrUnexpectedShape)
	}
	text := candidate.Content.Parts[0].Text
	if text == nil {
		return "", fmt.Errorf("%w: part has no text", ErrUnexpectedShape)
	}

	return *text, nil
}

// classifyTransportError separates timeouts from other transport failures.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUpstreamTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ErrUpstreamTimeout
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
