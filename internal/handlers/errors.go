package handlers

import (
	"errors"
	"fmt"
	"log"

	"gymhub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error kind to its HTTP status. Anything without
// a kind is an unclassified failure and surfaces as a bare 500; the internal
// detail stays in the server log.
func respondError(c *fiber.Ctx, err error) error {
	var de *models.DomainError
	if errors.As(err, &de) {
		status := fiber.StatusInternalServerError
		switch de.Kind {
		case models.ErrKindEntityNotFound:
			status = fiber.StatusNotFound
		case models.ErrKindDuplicateEntity, models.ErrKindMembershipExists:
			status = fiber.StatusConflict
		case models.ErrKindCapacityExceeded, models.ErrKindRequiredField:
			status = fiber.StatusBadRequest
		case models.ErrKindUnauthorized, models.ErrKindTokenExpired:
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{
			"error":   string(de.Kind),
			"message": de.Message,
		})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred",
	})
}

// respondValidationError formats validator failures per field.
func respondValidationError(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
