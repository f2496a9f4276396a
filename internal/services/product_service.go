package services

import (
	"context"
	"errors"

	"tienda/internal/apperr"
	"tienda/internal/domain"
	"tienda/internal/repos"
	"tienda/internal/validate"
)

// ProductService validates raw request payloads and maps store outcomes
// onto the error taxonomy. Payloads arrive as decoded JSON maps so that
// field presence, the patch whitelist and numeric coercion behave the
// same for typed and stringly-typed clients.
type ProductService struct {
	Products repos.ProductRepo
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.Products.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("could not fetch the products")
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.Product{}, apperr.NotFound("product_not_found", "no product with id: "+id)
	}
	if err != nil {
		return domain.Product{}, apperr.Internal("could not fetch the product")
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, data map[string]any) (domain.Product, error) {
	p, err := productFromBody(data)
	if err != nil {
		return domain.Product{}, err
	}
	created, err := s.Products.Create(ctx, p)
	if err != nil {
		return domain.Product{}, apperr.Internal("could not create the product")
	}
	return created, nil
}

// Update is a full replace: the same required-fields rule as Create,
// applied over the existing record.
func (s *ProductService) Update(ctx context.Context, id string, data map[string]any) (domain.Product, error) {
	p, err := productFromBody(data)
	if err != nil {
		return domain.Product{}, err
	}
	patch := domain.ProductPatch{Name: &p.Name, Description: &p.Description, Price: &p.Price, Stock: &p.Stock}
	return s.applyPatch(ctx, id, patch)
}

func (s *ProductService) Patch(ctx context.Context, id string, data map[string]any) (domain.Product, error) {
	if !validate.PatchFields(data) {
		return domain.Product{}, apperr.BadRequest("invalid_patch",
			"provide at least one allowed field to update (name, description, price, stock)")
	}
	data = validate.ToNumberIfPresent(data, "price", "stock")

	var patch domain.ProductPatch
	if v, ok := data["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return domain.Product{}, apperr.BadRequest("invalid_fields", "name must be a string")
		}
		patch.Name = &name
	}
	if v, ok := data["description"]; ok {
		desc, ok := v.(string)
		if !ok {
			return domain.Product{}, apperr.BadRequest("invalid_fields", "description must be a string")
		}
		patch.Description = &desc
	}
	if v, ok := data["price"]; ok {
		price := v.(float64)
		patch.Price = &price
	}
	if v, ok := data["stock"]; ok {
		stock := int(v.(float64))
		patch.Stock = &stock
	}
	return s.applyPatch(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	removed, err := s.Products.Remove(ctx, id)
	if err != nil {
		return apperr.Internal("could not delete the product")
	}
	if !removed {
		return apperr.NotFound("product_not_found", "no product with id: "+id)
	}
	return nil
}

func (s *ProductService) applyPatch(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	updated, err := s.Products.Update(ctx, id, patch)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.Product{}, apperr.NotFound("product_not_found", "no product with id: "+id)
	}
	if err != nil {
		return domain.Product{}, apperr.Internal("could not update the product")
	}
	return updated, nil
}

// productFromBody enforces the create/replace contract: all four fields
// present and non-zero, price and stock numeric.
func productFromBody(data map[string]any) (domain.Product, error) {
	if !validate.ProductFields(data) {
		return domain.Product{}, apperr.BadRequest("missing_fields",
			"all fields (name, description, price, stock) are required")
	}
	name, nameOK := data["name"].(string)
	desc, descOK := data["description"].(string)
	price, priceOK := validate.ToNumber(data["price"])
	stock, stockOK := validate.ToNumber(data["stock"])
	if !nameOK || !descOK || !priceOK || !stockOK {
		return domain.Product{}, apperr.BadRequest("invalid_fields",
			"name and description must be strings; price and stock must be numeric")
	}
	return domain.Product{Name: name, Description: desc, Price: price, Stock: int(stock)}, nil
}
