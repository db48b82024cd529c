package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-fit/internal/services"
)

type StatusHandler struct {
	assistant services.AssistantProvider
}

func NewStatusHandler(assistant services.AssistantProvider) *StatusHandler {
	return &StatusHandler{assistant: assistant}
}

func (h *StatusHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// HandleStatus handles GET /status. It always answers 200; Running tells
// whether Ollama could be reached.
func (h *StatusHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.assistant.Status(c.UserContext()))
}
