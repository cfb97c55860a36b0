package service

import (
	"context"
	"fmt"
	"time"

	"github.com/musemind/api/internal/client"
	"github.com/musemind/api/internal/model"
)

// PoemService runs the generation pipeline: resolve theme, build prompt,
// call Gemini, normalize the result. No state is shared between requests.
type PoemService struct {
	gemini *client.GeminiClient
}

// NewPoemService creates a new poem service with the given Gemini client
func NewPoemService(gemini *client.GeminiClient) *PoemService {
	return &PoemService{
		gemini: gemini,
	}
}

// Generate produces a themed poem from the user's input. Upstream failures
// pass through untouched so the handler can classify them.
func (s *PoemService) Generate(ctx context.Context, req *model.PoemGenerateRequest) (*model.PoemGenerateResponse, error) {
	theme := model.ResolveTheme(req.Theme)
	prompt := buildPrompt(req.UserInput, theme)

	raw, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("poem generation: %w", err)
	}

	return &model.PoemGenerateResponse{
		Success:   true,
		Poem:      normalizePoem(raw),
		Theme:     req.Theme,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
