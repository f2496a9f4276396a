package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"tienda/internal/config"
	applog "tienda/internal/log"
	"tienda/internal/repos"
	"tienda/internal/services"
	"tienda/internal/token"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	Tokens         *token.Manager
}

func NewDeps(products repos.ProductRepo, users repos.UserRepo, cfg config.Config) *Deps {
	tokens := token.NewManager(cfg.JWTSecret)
	return &Deps{
		AuthHandler:    &AuthHandler{Auth: &services.AuthService{Users: users, Tokens: tokens}},
		ProductHandler: &ProductHandler{Products: &services.ProductService{Products: products}},
		Tokens:         tokens,
	}
}

// Routes mounts the API surface. Login is throttled; product mutations
// sit behind the bearer-token middleware.
func (d *Deps) Routes(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/register", d.AuthHandler.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "too_many_requests",
				"message": "too many login attempts, try again later",
			})
		},
	}), d.AuthHandler.Login)

	products := app.Group("/api/products")
	products.Get("/", d.ProductHandler.List)
	products.Get("/:id", d.ProductHandler.Get)

	guard := RequireAuth(d.Tokens)
	products.Post("/", guard, d.ProductHandler.Create)
	products.Put("/:id", guard, d.ProductHandler.Update)
	products.Patch("/:id", guard, d.ProductHandler.Patch)
	products.Delete("/:id", guard, d.ProductHandler.Delete)
}
