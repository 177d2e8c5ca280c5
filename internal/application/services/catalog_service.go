package services

import (
	"context"
	"fmt"

	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/ports"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	products ports.ProductRepository
	files    ports.FileStore
	logger   *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products ports.ProductRepository, files ports.FileStore, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		files:    files,
		logger:   logger,
	}
}

// ListProducts returns the full catalog verbatim
func (s *CatalogService) ListProducts(ctx context.Context) []entities.Product {
	return s.products.List(ctx)
}

// AddProduct stores the product image and appends the new product to the
// catalog. The read-append-write cycle has no cross-request coordination:
// two concurrent adds can both read the same base list and one append can
// be lost.
func (s *CatalogService) AddProduct(ctx context.Context, name, description string, image []byte, imageName string) (*entities.Product, error) {
	storedPath, err := s.files.Store(ctx, image, imageName)
	if err != nil {
		return nil, fmt.Errorf("failed to store product image: %w", err)
	}

	product := entities.Product{
		Name:        name,
		Description: description,
		Image:       storedPath,
	}

	products := s.products.List(ctx)
	products = append(products, product)
	if err := s.products.Save(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info("Product added", "name", product.Name, "image", product.Image)

	return &product, nil
}
