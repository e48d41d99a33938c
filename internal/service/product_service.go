package service

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// productSearchFields are the columns the catalog search term is matched
// against.
var productSearchFields = []string{"category", "description", "name"}

// CreateProductInput is one item of a bulk create.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	ProductID   string
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
}

// FetchQuery narrows and pages a catalog fetch. Zero values mean "no
// constraint"; nil price bounds leave that end of the range open.
type FetchQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
}

// ProductService handles catalog operations.
type ProductService interface {
	CreateProducts(ctx context.Context, inputs []CreateProductInput) ([]model.Product, error)
	UpdateProduct(ctx context.Context, patch ProductPatch) (*model.Product, error)
	DeleteProducts(ctx context.Context, ids []string) error
	FetchProducts(ctx context.Context, query FetchQuery) ([]model.Product, error)
}

type productService struct {
	products repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

// CreateProducts persists each input independently with one concurrent
// write per item. There is no atomicity across the batch: if one insert
// fails, writes that already landed are not rolled back.
func (s *productService) CreateProducts(ctx context.Context, inputs []CreateProductInput) ([]model.Product, error) {
	out := make([]model.Product, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			created, err := s.products.Create(ctx, &model.Product{
				Name:        in.Name,
				Description: in.Description,
				Category:    in.Category,
				Price:       in.Price,
			})
			if err != nil {
				return err
			}
			out[i] = *created
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal("ProductService.CreateProducts", err)
	}
	return out, nil
}

// UpdateProduct applies a partial patch to an existing product. The id
// itself is never patched.
func (s *productService) UpdateProduct(ctx context.Context, patch ProductPatch) (*model.Product, error) {
	existing, err := s.products.FindByID(ctx, patch.ProductID)
	if err != nil {
		return nil, apperrors.Internal("ProductService.UpdateProduct", err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("Product not found")
	}

	data := map[string]interface{}{}
	if patch.Name != nil {
		data["name"] = *patch.Name
	}
	if patch.Description != nil {
		data["description"] = *patch.Description
	}
	if patch.Category != nil {
		data["category"] = *patch.Category
	}
	if patch.Price != nil {
		data["price"] = *patch.Price
	}

	updated, err := s.products.Update(ctx, patch.ProductID, data)
	if err != nil {
		return nil, apperrors.Internal("ProductService.UpdateProduct", err)
	}
	if updated == nil {
		return nil, apperrors.NotFound("Product not found")
	}
	return updated, nil
}

// DeleteProducts bulk-removes products by id. Ids with no matching record
// are silently ignored; the operation reports success either way.
func (s *productService) DeleteProducts(ctx context.Context, ids []string) error {
	if err := s.products.DeleteMany(ctx, ids); err != nil {
		return apperrors.Internal("ProductService.DeleteProducts", err)
	}
	return nil
}

// FetchProducts returns the page of products matching the optional category
// equality, price range and search term.
func (s *productService) FetchProducts(ctx context.Context, query FetchQuery) ([]model.Product, error) {
	filter := repository.Filter{}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.PriceGte != nil || query.PriceLte != nil {
		rng := repository.Range{}
		if query.PriceGte != nil {
			rng.Gte = *query.PriceGte
		}
		if query.PriceLte != nil {
			rng.Lte = *query.PriceLte
		}
		filter["price"] = rng
	}

	products, err := s.products.Search(ctx, filter, query.Search, productSearchFields, query.Limit, query.Page)
	if err != nil {
		return nil, apperrors.Internal("ProductService.FetchProducts", err)
	}
	return products, nil
}
