package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "tienda/internal/log"
	"tienda/internal/token"
)

// ClaimsKey is the fiber.Ctx locals key under which RequireAuth stores
// the verified token claims.
const ClaimsKey = "claims"

// RequireAuth guards mutating product routes. It accepts
// "Authorization: Bearer <token>"; a missing header, a malformed value
// or a token that fails verification all answer 401. Any valid token
// grants full mutation rights, there are no roles.
func RequireAuth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			applog.Security(c, "auth.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "missing_token",
				"message": "no token provided",
			})
		}

		raw := header
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			raw = parts[1]
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "invalid_token",
				"message": "invalid or expired token",
			})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
