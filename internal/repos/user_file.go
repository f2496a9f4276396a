package repos

import (
	"context"
	"path/filepath"

	"tienda/internal/domain"
)

// FileUserRepo keeps users in DATA_DIR/users.json as a bare array, the
// shape the file has always had.
type FileUserRepo struct {
	f *jsonFile[domain.User]
}

func NewFileUserRepo(dataDir string) *FileUserRepo {
	return &FileUserRepo{f: &jsonFile[domain.User]{
		path: filepath.Join(dataDir, "users.json"),
	}}
}

func (r *FileUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	items, err := r.f.read()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.User{}
	}
	return items, nil
}

func (r *FileUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	items, err := r.f.read()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range items {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (r *FileUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	items, err := r.f.read()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range items {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (r *FileUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	err := r.f.mutate(func(items []domain.User) ([]domain.User, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		u.ID = nextID(ids)
		u.CreatedAt = nowStamp()
		return append(items, u), nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *FileUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	var merged domain.User
	err := r.f.mutate(func(items []domain.User) ([]domain.User, error) {
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
		return domain.User{}, err
	}
	return merged, nil
}

func (r *FileUserRepo) Remove(_ context.Context, id string) (bool, error) {
	removed := false
	err := r.f.mutate(func(items []domain.User) ([]domain.User, error) {
		kept := items[:0]
		for _, u := range items {
			if u.ID == id {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
