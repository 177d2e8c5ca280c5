package ports

import (
	"context"

	"github.com/shopstack/core/internal/domain/entities"
)

// ProductRepository provides access to the product collection.
//
// List never fails: a missing, empty or unreadable backing file is exposed
// as an empty collection. Save replaces the whole collection and surfaces
// write errors to the caller.
type ProductRepository interface {
	List(ctx context.Context) []entities.Product
	Save(ctx context.Context, products []entities.Product) error
}

// BasketRepository provides access to the basket collection. Same read and
// write contract as ProductRepository.
type BasketRepository interface {
	List(ctx context.Context) []entities.BasketEntry
	Save(ctx context.Context, entries []entities.BasketEntry) error
}

// UserRepository provides access to the user collection. Same read and
// write contract as ProductRepository.
type UserRepository interface {
	List(ctx context.Context) []entities.User
	Save(ctx context.Context, users []entities.User) error
}

// FileStore persists one uploaded binary and returns the public path it is
// reachable under.
type FileStore interface {
	Store(ctx context.Context, data []byte, originalName string) (string, error)
}
