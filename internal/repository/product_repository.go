package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// ProductRepository defines catalog persistence operations. It adds nothing
// over the generic repository.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, data map[string]interface{}) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
	DeleteMany(ctx context.Context, ids []string) error
	Search(ctx context.Context, filter Filter, searchTerm string, fields []string, limit, page int) ([]model.Product, error)
}

type productRepository struct {
	*Repository[model.Product]
}

// NewProductRepository builds a GORM-backed product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{Repository: New[model.Product](db)}
}
