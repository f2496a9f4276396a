package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tienda/internal/apperr"
	applog "tienda/internal/log"
	"tienda/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, apperr.BadRequest("invalid_body", "request body must be valid JSON"))
	}

	result, err := h.Auth.Register(c.UserContext(), body.Email, body.Password, body.Name)
	if err != nil {
		applog.Security(c, "auth.register.fail", map[string]any{"email": body.Email})
		return fail(c, err)
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": body.Email, "user_id": result.User.ID})
	return respond(c, fiber.StatusCreated, result, "user registered successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, apperr.BadRequest("invalid_body", "request body must be valid JSON"))
	}

	result, err := h.Auth.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email})
		return fail(c, err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": body.Email})
	return respond(c, fiber.StatusOK, result, "login successful")
}
