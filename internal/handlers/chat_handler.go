package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-fit/internal/models"
	"alfredoptarigan/career-fit/internal/services"
)

type ChatHandler struct {
	sessions services.SessionStore
}

func NewChatHandler(sessions services.SessionStore) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

func answerResponse(session *services.Session, question string, answer services.Answer) models.AnswerResponse {
	resp := models.AnswerResponse{
		Question: question,
		Answer:   answer.Display(),
		HistoryN: len(session.History()),
	}
	if answer.Err != nil {
		resp.ErrorKind = string(answer.Err.Kind)
	}
	return resp
}

// HandleAsk handles POST /sessions/:id/ask
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	answer, err := session.Ask(c.UserContext(), req.Question)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(answerResponse(session, req.Question, answer))
}

// HandleQuick handles POST /sessions/:id/quick/:index
func (h *ChatHandler) HandleQuick(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "index must be an integer")
	}

	question, answer, err := session.AskQuick(c.UserContext(), index)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(answerResponse(session, question, answer))
}

// HandleInsight handles POST /sessions/:id/insights/:kind
func (h *ChatHandler) HandleInsight(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	kind := services.InsightKind(c.Params("kind"))
	answer, err := session.Insight(c.UserContext(), kind)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(answerResponse(session, string(kind), answer))
}

// HandleClearHistory handles DELETE /sessions/:id/history
func (h *ChatHandler) HandleClearHistory(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	session.ClearHistory()
	return c.JSON(session.Snapshot())
}
