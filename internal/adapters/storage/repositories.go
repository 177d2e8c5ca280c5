package storage

import (
	"context"

	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/ports"
)

var (
	_ ports.ProductRepository = (*ProductRepository)(nil)
	_ ports.BasketRepository  = (*BasketRepository)(nil)
	_ ports.UserRepository    = (*UserRepository)(nil)
)

// ProductRepository stores products in one flat JSON file
type ProductRepository struct {
	path   string
	logger *logger.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(path string, log *logger.Logger) *ProductRepository {
	return &ProductRepository{
		path:   path,
		logger: log.WithComponent("product_repository"),
	}
}

// List returns the stored products. Unreadable content collapses to an
// empty collection.
func (r *ProductRepository) List(ctx context.Context) []entities.Product {
	items, err := ReadCollection[entities.Product](r.path)
	if err != nil {
		r.logger.Debugw("Discarding unreadable collection", "path", r.path, "error", err.Error())
	}
	return items
}

// Save rewrites the whole product collection
func (r *ProductRepository) Save(ctx context.Context, products []entities.Product) error {
	err := WriteCollection(r.path, products)
	r.logger.LogFileOperation("write", r.path, err)
	return err
}

// BasketRepository stores basket entries in one flat JSON file
type BasketRepository struct {
	path   string
	logger *logger.Logger
}

// NewBasketRepository creates a new basket repository
func NewBasketRepository(path string, log *logger.Logger) *BasketRepository {
	return &BasketRepository{
		path:   path,
		logger: log.WithComponent("basket_repository"),
	}
}

// List returns the stored basket entries. Unreadable content collapses to
// an empty collection.
func (r *BasketRepository) List(ctx context.Context) []entities.BasketEntry {
	items, err := ReadCollection[entities.BasketEntry](r.path)
	if err != nil {
		r.logger.Debugw("Discarding unreadable collection", "path", r.path, "error", err.Error())
	}
	return items
}

// Save rewrites the whole basket collection
func (r *BasketRepository) Save(ctx context.Context, entries []entities.BasketEntry) error {
	err := WriteCollection(r.path, entries)
	r.logger.LogFileOperation("write", r.path, err)
	return err
}

// UserRepository stores users in one flat JSON file
type UserRepository struct {
	path   string
	logger *logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(path string, log *logger.Logger) *UserRepository {
	return &UserRepository{
		path:   path,
		logger: log.WithComponent("user_repository"),
	}
}

// List returns the stored users. Unreadable content collapses to an empty
// collection.
func (r *UserRepository) List(ctx context.Context) []entities.User {
	items, err := ReadCollection[entities.User](r.path)
	if err != nil {
		r.logger.Debugw("Discarding unreadable collection", "path", r.path, "error", err.Error())
	}
	return items
}

// Save rewrites the whole user collection
func (r *UserRepository) Save(ctx context.Context, users []entities.User) error {
	err := WriteCollection(r.path, users)
	r.logger.LogFileOperation("write", r.path, err)
	return err
}
