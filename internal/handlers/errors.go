package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-fit/internal/services"
)

// ErrorHandler renders every error as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

// toHTTPError maps service errors onto HTTP status codes.
func toHTTPError(err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, services.ErrInvalidUpload),
		errors.Is(err, services.ErrEmptyQuestion),
		errors.Is(err, services.ErrUnknownInsight),
		errors.Is(err, services.ErrQuestionIndex):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotProcessed):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoModelAvailable),
		errors.Is(err, services.ErrBackendUnavailable),
		errors.Is(err, services.ErrModelNotFound):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
