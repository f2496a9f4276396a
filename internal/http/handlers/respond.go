package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/apperr"
	applog "tienda/internal/log"
)

// All success responses share one envelope: {"data": ..., "message": ...}.
// Historically some endpoints answered bare arrays or ad-hoc keys; the
// shape is normalized here so clients parse one thing.
func respond(c *fiber.Ctx, status int, data any, message string) error {
	body := fiber.Map{"data": data}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// fail writes {"error": code, "message": text} with the status carried
// by the service error; anything unrecognized becomes an opaque 500.
func fail(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{"error": ae.Code, "message": ae.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "unexpected server error",
	})
}
