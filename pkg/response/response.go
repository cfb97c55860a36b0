package response

import "github.com/gofiber/fiber/v2"

// Caller-facing messages. These are the only failure strings that ever leave
// the service; internal error detail stays in the server logs.
const (
	MsgInvalidInput       = "Please provide your feelings or thoughts to generate a poem."
	MsgServerConfig       = "Server configuration error. Please contact support."
	MsgUpstreamBadRequest = "Invalid request to AI service. Please try a different prompt."
	MsgAuthFailed         = "Authentication failed. Please check server configuration."
	MsgRateLimited        = "Too many requests. Please wait and try again."
	MsgUnavailable        = "AI service temporarily unavailable. Try again later."
	MsgGenerationFailed   = "Failed to generate poem. Please try again."
	MsgTimeout            = "Request timed out. Please try again with a shorter prompt."
	MsgUnexpected         = "An unexpected error occurred. Please try again."
	MsgNotFound           = "Endpoint not found. Use POST /api/generate-poem to generate poems."
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

func InvalidInput(c *fiber.Ctx) error {
	return Error(c, fiber.StatusBadRequest, MsgInvalidInput)
}

func ServerConfig(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgServerConfig)
}

func UpstreamBadRequest(c *fiber.Ctx) error {
	return Error(c, fiber.StatusBadRequest, MsgUpstreamBadRequest)
}

func AuthFailed(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgAuthFailed)
}

func RateLimited(c *fiber.Ctx) error {
	return Error(c, fiber.StatusTooManyRequests, MsgRateLimited)
}

func Unavailable(c *fiber.Ctx) error {
	return Error(c, fiber.StatusServiceUnavailable, MsgUnavailable)
}

func GenerationFailed(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgGenerationFailed)
}

func Timeout(c *fiber.Ctx) error {
	return Error(c, fiber.StatusGatewayTimeout, MsgTimeout)
}

func Unexpected(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, MsgUnexpected)
}

func NotFound(c *fiber.Ctx) error {
	return Error(c, fiber.StatusNotFound, MsgNotFound)
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}
