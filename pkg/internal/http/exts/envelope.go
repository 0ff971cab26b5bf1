package exts

import (
	"errors"

	"github.com/fitlogue/fitlogue/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the only contract the presentation layer relies on: a status
// code, a success flag and either the payload or an error message.
type Envelope struct {
	Status       int    `json:"status"`
	Success      bool   `json:"success"`
	Response     any    `json:"response,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func Respond(c *fiber.Ctx, payload any) error {
	return c.JSON(Envelope{
		Status:   fiber.StatusOK,
		Success:  true,
		Response: payload,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrAccessDenied):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnavailable):
		return fiber.StatusInternalServerError
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders every failure through the envelope, mapping the
// service failure classes onto HTTP statuses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := statusOf(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	return c.Status(status).JSON(Envelope{
		Status:       status,
		Success:      false,
		ErrorMessage: err.Error(),
	})
}
