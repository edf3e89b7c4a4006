package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// All responses share the {success, data?, message?, error?} envelope.

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}

func fail(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// failValidation reports which fields failed which rules.
func failValidation(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   errorMessages,
		})
	}
	return fail(c, fiber.StatusBadRequest, "Validation failed", err)
}

// failService maps a service error onto the HTTP status taxonomy. Unexpected
// errors are logged and returned as a generic 500 without internal detail.
func failService(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, message, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, message, err)
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, message, err)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrPaymentMethodInvalid):
		return fail(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrStatusConflict),
		errors.Is(err, services.ErrCouponExpired),
		errors.Is(err, services.ErrCouponExhausted),
		errors.Is(err, services.ErrItemUnavailable):
		return fail(c, fiber.StatusConflict, message, err)
	}
	log.Printf("%s: %v", message, err)
	return fail(c, fiber.StatusInternalServerError, message, nil)
}
