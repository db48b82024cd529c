package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/services"
)

// Routes lists the registered endpoints for the root route.
var Routes = []string{
	"GET /api/v1/health",
	"GET /api/v1/status",
	"POST /api/v1/sessions",
	"GET /api/v1/sessions/:id",
	"DELETE /api/v1/sessions/:id",
	"POST /api/v1/sessions/:id/process",
	"POST /api/v1/sessions/:id/ask",
	"POST /api/v1/sessions/:id/quick/:index",
	"POST /api/v1/sessions/:id/insights/:kind",
	"DELETE /api/v1/sessions/:id/history",
	"POST /api/v1/trips/plan",
	"POST /api/v1/trips/chat",
	"GET /api/v1/trips/budget-tips",
	"GET /api/v1/trips/checklist",
	"GET /api/v1/trips/destinations",
}

// Register mounts all handlers under /api/v1.
func Register(app *fiber.App, svc *services.Services, log *zap.Logger) {
	sessionHandler := NewSessionHandler(svc.Sessions, svc.Analyzer, svc.Storage, log)
	chatHandler := NewChatHandler(svc.Sessions)
	tripHandler := NewTripHandler(svc.Trips)
	statusHandler := NewStatusHandler(svc.Assistant)

	api := app.Group("/api/v1")

	api.Get("/health", statusHandler.HandleHealth)
	api.Get("/status", statusHandler.HandleStatus)

	sessions := api.Group("/sessions")
	sessions.Post("/", sessionHandler.HandleCreate)
	sessions.Get("/:id", sessionHandler.HandleGet)
	sessions.Delete("/:id", sessionHandler.HandleDelete)
	sessions.Post("/:id/process", sessionHandler.HandleProcess)
	sessions.Post("/:id/ask", chatHandler.HandleAsk)
	sessions.Post("/:id/quick/:index", chatHandler.HandleQuick)
	sessions.Post("/:id/insights/:kind", chatHandler.HandleInsight)
	sessions.Delete("/:id/history", chatHandler.HandleClearHistory)

	trips := api.Group("/trips")
	trips.Post("/plan", tripHandler.HandlePlan)
	trips.Post("/chat", tripHandler.HandleChat)
	trips.Get("/budget-tips", tripHandler.HandleBudgetTips)
	trips.Get("/checklist", tripHandler.HandleChecklist)
	trips.Get("/destinations", tripHandler.HandleDestinations)
}
