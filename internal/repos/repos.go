// Package repos implements the dual-backed model layer: every entity can
// be served by a MongoDB collection, by a local JSON file, or by a
// fallback decorator that tries Mongo first and degrades to the file
// store when the remote call fails.
package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"tienda/internal/config"
	"tienda/internal/domain"
)

// ErrNotFound signals record absence as distinct from an operational
// failure. The fallback decorator never degrades on it.
var ErrNotFound = errors.New("record not found")

type ProductRepo interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type UserRepo interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// New wires the store stack once, at construction time. In development
// mode (or without a connected client) the JSON files are the only
// store; otherwise Mongo is primary with the files as fallback.
func New(cfg config.Config, client *mongo.Client) (ProductRepo, UserRepo) {
	fileProducts := NewFileProductRepo(cfg.DataDir)
	fileUsers := NewFileUserRepo(cfg.DataDir)

	if cfg.Local() || client == nil {
		return fileProducts, fileUsers
	}

	db := client.Database(cfg.MongoDB)
	return &FallbackProductRepo{Primary: NewMongoProductRepo(db), Local: fileProducts},
		&FallbackUserRepo{Primary: NewMongoUserRepo(db), Local: fileUsers}
}
