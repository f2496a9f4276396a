package repos

import (
	"context"
	"path/filepath"

	"tienda/internal/domain"
)

// FileProductRepo keeps products in DATA_DIR/products.json under a
// top-level "products" key.
type FileProductRepo struct {
	f *jsonFile[domain.Product]
}

func NewFileProductRepo(dataDir string) *FileProductRepo {
	return &FileProductRepo{f: &jsonFile[domain.Product]{
		path:    filepath.Join(dataDir, "products.json"),
		wrapKey: "products",
	}}
}

func (r *FileProductRepo) GetAll(_ context.Context) ([]domain.Product, error) {
	items, err := r.f.read()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	return items, nil
}

func (r *FileProductRepo) GetByID(_ context.Context, id string) (domain.Product, error) {
	items, err := r.f.read()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (r *FileProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	err := r.f.mutate(func(items []domain.Product) ([]domain.Product, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		p.ID = nextID(ids)
		p.CreatedAt = nowStamp()
		return append(items, p), nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *FileProductRepo) Update(_ context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	var merged domain.Product
	err := r.f.mutate(func(items []domain.Product) ([]domain.Product, error) {
		for i := range items {
			if items[i].ID == id {
				patch.ApplyTo(&items[i])
				items[i].UpdatedAt = nowStamp()
				merged = items[i]
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return domain.Product{}, err
	}
	return merged, nil
}

func (r *FileProductRepo) Remove(_ context.Context, id string) (bool, error) {
	removed := false
	err := r.f.mutate(func(items []domain.Product) ([]domain.Product, error) {
		kept := items[:0]
		for _, p := range items {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
