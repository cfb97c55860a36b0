package handler

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/musemind/api/internal/client"
	"github.com/musemind/api/internal/model"
	"github.com/musemind/api/internal/service"
	"github.com/musemind/api/pkg/response"
)

type PoemHandler struct {
	service   *service.PoemService
	validator *validator.Validate
}

func NewPoemHandler(svc *service.PoemService, v *validator.Validate) *PoemHandler {
	return &PoemHandler{
		service:   svc,
		validator: v,
	}
}

// Generate handles POST /api/generate-poem
func (h *PoemHandler) Generate(c *fiber.Ctx) error {
	var req model.PoemGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidInput(c)
	}

	if err := h.validator.Struct(&req); err != nil {
		return response.InvalidInput(c)
	}

	if strings.TrimSpace(req.UserInput) == "" {
		return response.InvalidInput(c)
	}

	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		log.Printf("Error generating poem: %v", err)
		return mapGenerationError(c, err)
	}

	return response.OK(c, result)
}

// mapGenerationError converts pipeline failures to the caller-facing
// status/message pairs. Upstream 401/403 are masked as a server
// configuration problem so credentials issues never leak to end users.
func mapGenerationError(c *fiber.Ctx, err error) error {
	var statusErr *client.StatusError

	switch {
	case errors.Is(err, client.ErrNotConfigured):
		return response.ServerConfig(c)
	case errors.Is(err, client.ErrUpstreamTimeout):
		return response.Timeout(c)
	case errors.Is(err, client.ErrUnexpectedShape):
		return response.GenerationFailed(c)
	case errors.As(err, &statusErr):
		switch statusErr.StatusCode {
		case fiber.StatusBadRequest:
			return response.UpstreamBadRequest(c)
		case fiber.StatusUnauthorized, fiber.StatusForbidden:
			return response.AuthFailed(c)
		case fiber.StatusTooManyRequests:
			return response.RateLimited(c)
		case fiber.StatusServiceUnavailable:
			return response.Unavailable(c)
		default:
			return response.GenerationFailed(c)
		}
	default:
		// ErrUpstreamUnreachable and anything unclassified
		return response.Unexpected(c)
	}
}
