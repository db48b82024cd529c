package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-fit/internal/models"
	"alfredoptarigan/career-fit/internal/services"
)

type TripHandler struct {
	planner services.TripPlannerService
}

func NewTripHandler(planner services.TripPlannerService) *TripHandler {
	return &TripHandler{planner: planner}
}

// HandlePlan handles POST /trips/plan
func (h *TripHandler) HandlePlan(c *fiber.Ctx) error {
	var req models.TripPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	plan := h.planner.Suggest(req.Destination, req.DurationDays, req.Budget, req.Interests)
	return c.JSON(models.MarkdownResponse{Markdown: plan})
}

// HandleChat handles POST /trips/chat
func (h *TripHandler) HandleChat(c *fiber.Ctx) error {
	var req models.TripChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(models.MarkdownResponse{Markdown: h.planner.Reply(req.Message)})
}

func (h *TripHandler) HandleBudgetTips(c *fiber.Ctx) error {
	return c.JSON(models.MarkdownResponse{Markdown: h.planner.BudgetTips()})
}

func (h *TripHandler) HandleChecklist(c *fiber.Ctx) error {
	return c.JSON(models.MarkdownResponse{Markdown: h.planner.TravelChecklist()})
}

// HandleDestinations handles GET /trips/destinations
func (h *TripHandler) HandleDestinations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"destinations": h.planner.Destinations(),
		"markdown":     h.planner.PopularDestinations(),
	})
}
