package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP con el cuerpo
// {"error": mensaje}.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientStock):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrInsufficientData):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

// badRequest responde 400 con un mensaje literal.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
