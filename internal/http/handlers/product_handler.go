package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tienda/internal/apperr"
	applog "tienda/internal/log"
	"tienda/internal/services"
)

type ProductHandler struct {
	Products *services.ProductService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, products, "")
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.Products.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, p, "")
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	data, err := bodyMap(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.Products.Create(c.UserContext(), data)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return respond(c, fiber.StatusCreated, p, "product created successfully")
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	data, err := bodyMap(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.Products.Update(c.UserContext(), c.Params("id"), data)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": p.ID})
	return respond(c, fiber.StatusOK, p, "product updated successfully")
}

func (h *ProductHandler) Patch(c *fiber.Ctx) error {
	data, err := bodyMap(c)
	if err != nil {
		return fail(c, err)
	}
	p, err := h.Products.Patch(c.UserContext(), c.Params("id"), data)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.patch", map[string]any{"product_id": p.ID})
	return respond(c, fiber.StatusOK, p, "product updated successfully")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Products.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return respond(c, fiber.StatusOK, fiber.Map{"id": id}, "product deleted successfully")
}

// bodyMap decodes the JSON body as a raw map; validation over field
// presence and the patch whitelist happens in the service layer.
func bodyMap(c *fiber.Ctx) (map[string]any, error) {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return nil, apperr.BadRequest("invalid_body", "request body must be valid JSON")
	}
	return data, nil
}
