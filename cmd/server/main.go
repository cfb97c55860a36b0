package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/musemind/api/internal/client"
	"github.com/musemind/api/internal/config"
	"github.com/musemind/api/internal/handler"
	"github.com/musemind/api/internal/service"
	"github.com/musemind/api/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize validator
	validate := validator.New()

	// Initialize Gemini client
	geminiClient := client.NewGeminiClient(&cfg.Gemini)
	if !geminiClient.IsConfigured() {
		log.Println("Warning: GEMINI_API_KEY not set — generation requests will fail")
	}

	// Initialize services and handlers
	poemService := service.NewPoemService(geminiClient)
	poemHandler := handler.NewPoemHandler(poemService, validate)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	isDebug := strings.EqualFold(cfg.Server.LogLevel, "debug")
	logFormat := "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n"
	if isDebug {
		logFormat = "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path} ${body}\n"
		log.Println("Debug logging enabled")
	}
	app.Use(logger.New(logger.Config{
		Format: logFormat,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "MuseMind backend is running with Gemini API!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Poem generation
	app.Post("/api/generate-poem", poemHandler.Generate)

	// Front-end entry page and assets
	app.Static("/", "./public")

	// 404 fallthrough (must be after routes)
	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c)
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// customErrorHandler keeps unexpected Fiber-level failures on the same flat
// error contract as the pipeline.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := response.MsgUnexpected

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		if code == fiber.StatusNotFound || code == fiber.StatusMethodNotAllowed {
			return response.NotFound(c)
		}
	}

	return c.Status(code).JSON(response.ErrorResponse{Error: message})
}
