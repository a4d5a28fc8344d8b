package handler

import (
	"log"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to its status code. Infrastructure
// failures are logged server-side and never leak internals to the client.
func respondError(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

func respondValidationErrors(c *fiber.Ctx, errs []*validator.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"errors":  errs,
	})
}
