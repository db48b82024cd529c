package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/config"
	"alfredoptarigan/career-fit/internal/handlers"
	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Server.LogJSON, cfg.Server.LogDebug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx := context.Background()

	// Initialize services
	svc, err := services.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize services", zap.Error(err))
	}

	// Report Ollama availability; the server still starts without it.
	statusCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	status := svc.Assistant.Status(statusCtx)
	cancel()
	switch {
	case !status.Running:
		zl.Warn("Ollama is not running or unreachable", zap.String("host", cfg.Ollama.Host), zap.String("error", status.Error))
	case len(status.Models) == 0:
		zl.Warn("Ollama is running but no models are installed, try: ollama pull llama3.2")
	default:
		zl.Info("Ollama is running", zap.Strings("models", status.Models))
	}

	janitor := services.NewJanitor(svc.Sessions, cfg.Session.SweepInterval, zl.Named("janitor"))
	janitor.Start(ctx)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Fit API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Ollama.ChatTimeout + 10*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.Register(app, svc, zl.Named("http"))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Career Fit API",
			"version":   "1.0.0",
			"endpoints": handlers.Routes,
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("shutting down server")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			zl.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
