package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
	"alfredoptarigan/career-fit/internal/services"
)

type SessionHandler struct {
	sessions services.SessionStore
	analyzer services.AnalyzerService
	storage  services.StorageService
	logger   *zap.Logger
}

func NewSessionHandler(
	sessions services.SessionStore,
	analyzer services.AnalyzerService,
	storage services.StorageService,
	log *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		analyzer: analyzer,
		storage:  storage,
		logger:   logger.OrNop(log),
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	req, data, err := h.readProcessForm(c)
	if err != nil {
		return err
	}

	analysis, err := h.analyzer.Process(c.UserContext(), data, req.JobDescription, req.Mode)
	if err != nil {
		h.logger.Warn("processing failed", zap.Error(err))
		return toHTTPError(err)
	}

	session := h.sessions.Create(analysis.Mode)
	session.Replace(analysis)

	return c.Status(fiber.StatusCreated).JSON(session.Snapshot())
}

// HandleProcess handles POST /sessions/:id/process
func (h *SessionHandler) HandleProcess(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	req, data, err := h.readProcessForm(c)
	if err != nil {
		return err
	}
	if req.Mode == "" {
		req.Mode = session.Mode()
	}

	// On failure the previous analysis stays in place.
	analysis, err := h.analyzer.Process(c.UserContext(), data, req.JobDescription, req.Mode)
	if err != nil {
		h.logger.Warn("reprocessing failed", zap.String("session_id", session.ID()), zap.Error(err))
		return toHTTPError(err)
	}

	session.Replace(analysis)
	return c.JSON(session.Snapshot())
}

func (h *SessionHandler) readProcessForm(c *fiber.Ctx) (models.ProcessRequest, []byte, error) {
	var req models.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "failed to parse multipart form")
	}

	if err := req.Validate(); err != nil {
		return req, nil, toHTTPError(err)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	data, err := h.storage.ReadUpload(file)
	if err != nil {
		return req, nil, toHTTPError(err)
	}

	return req, data, nil
}

// HandleGet handles GET /sessions/:id
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(session.Snapshot())
}

// HandleDelete handles DELETE /sessions/:id
func (h *SessionHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("id")); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
