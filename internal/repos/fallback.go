package repos

import (
	"context"
	"errors"

	"tienda/internal/domain"
	applog "tienda/internal/log"
)

// FallbackProductRepo tries the primary store and, on any operational
// failure, replays the call against the local store. Record absence
// (ErrNotFound) is an answer, not a failure, and never degrades.
//
// The two stores are not replicated: a write that lands in one side only
// stays there. Availability is traded for consistency on purpose, and
// every degradation is logged under "store.fallback".
type FallbackProductRepo struct {
	Primary ProductRepo
	Local   ProductRepo
}

func fellBack(err error, entity, op string) bool {
	if err == nil || errors.Is(err, ErrNotFound) {
		return false
	}
	applog.Error(nil, "store.fallback", err, map[string]any{"entity": entity, "op": op})
	return true
}

func (r *FallbackProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	out, err := r.Primary.GetAll(ctx)
	if fellBack(err, "product", "getAll") {
		return r.Local.GetAll(ctx)
	}
	return out, err
}

func (r *FallbackProductRepo) GetByID(ctx context.Context, id string) (domain.Product, error) {
	out, err := r.Primary.GetByID(ctx, id)
	if fellBack(err, "product", "getById") {
		return r.Local.GetByID(ctx, id)
	}
	return out, err
}

func (r *FallbackProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	out, err := r.Primary.Create(ctx, p)
	if fellBack(err, "product", "create") {
		return r.Local.Create(ctx, p)
	}
	return out, err
}

func (r *FallbackProductRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	out, err := r.Primary.Update(ctx, id, patch)
	if fellBack(err, "product", "update") {
		return r.Local.Update(ctx, id, patch)
	}
	return out, err
}

func (r *FallbackProductRepo) Remove(ctx context.Context, id string) (bool, error) {
	out, err := r.Primary.Remove(ctx, id)
	if fellBack(err, "product", "remove") {
		return r.Local.Remove(ctx, id)
	}
	return out, err
}

// FallbackUserRepo is the user-side twin of FallbackProductRepo.
type FallbackUserRepo struct {
	Primary UserRepo
	Local   UserRepo
}

func (r *FallbackUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	out, err := r.Primary.GetAll(ctx)
	if fellBack(err, "user", "getAll") {
		return r.Local.GetAll(ctx)
	}
	return out, err
}

func (r *FallbackUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	out, err := r.Primary.GetByID(ctx, id)
	if fellBack(err, "user", "getById") {
		return r.Local.GetByID(ctx, id)
	}
	return out, err
}

func (r *FallbackUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	out, err := r.Primary.GetByEmail(ctx, email)
	if fellBack(err, "user", "getByEmail") {
		return r.Local.GetByEmail(ctx, email)
	}
	return out, err
}

func (r *FallbackUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	out, err := r.Primary.Create(ctx, u)
	if fellBack(err, "user", "create") {
		return r.Local.Create(ctx, u)
	}
	return out, err
}

func (r *FallbackUserRepo) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	out, err := r.Primary.Update(ctx, id, patch)
	if fellBack(err, "user", "update") {
		return r.Local.Update(ctx, id, patch)
	}
	return out, err
}

func (r *FallbackUserRepo) Remove(ctx context.Context, id string) (bool, error) {
	out, err := r.Primary.Remove(ctx, id)
	if fellBack(err, "user", "remove") {
		return r.Local.Remove(ctx, id)
	}
	return out, err
}
