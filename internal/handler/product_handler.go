package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "storefront/internal/errors"
	"storefront/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest is one item of a bulk create.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// BulkCreateRequest is the body of POST /products/create.
type BulkCreateRequest struct {
	Products []CreateProductRequest `json:"products" validate:"required,min=1,dive"`
}

// UpdateProductRequest is a partial patch; absent fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// DeleteProductsRequest is the body of POST /products/delete.
type DeleteProductsRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// Create godoc
// @Summary Create products in bulk
// @Tags products
// @Accept json
// @Produce json
// @Param request body BulkCreateRequest true "Products to create"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Router /products/create [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req BulkCreateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	inputs := make([]service.CreateProductInput, len(req.Products))
	for i, p := range req.Products {
		inputs[i] = service.CreateProductInput{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       decimal.NewFromFloat(p.Price),
		}
	}

	products, err := h.productService.CreateProducts(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return success(c, "Product creation success!", http.StatusCreated, products)
}

// Update godoc
// @Summary Patch a product
// @Tags products
// @Accept json
// @Produce json
// @Param productId path string true "Product id"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Failure 404 {object} errors.ErrorEnvelope
// @Router /products/update/{productId} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	patch := service.ProductPatch{
		ProductID:   c.Param("productId"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		patch.Price = &price
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	return success(c, "Product updated!", http.StatusOK, product)
}

// Delete godoc
// @Summary Delete products by id
// @Tags products
// @Accept json
// @Produce json
// @Param request body DeleteProductsRequest true "Ids to delete"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorEnvelope
// @Router /products/delete [post]
func (h *ProductHandler) Delete(c echo.Context) error {
	var req DeleteProductsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	if err := h.productService.DeleteProducts(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	return success(c, "Product deleted!", http.StatusOK, nil)
}

// Fetch godoc
// @Summary Fetch products with search, filters and pagination
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param category query string false "Category equality filter"
// @Param search query string false "Case-insensitive search term"
// @Param priceLte query number false "Maximum price"
// @Param pricegte query number false "Minimum price"
// @Success 200 {object} Envelope
// @Router /products/fetch [get]
func (h *ProductHandler) Fetch(c echo.Context) error {
	query := service.FetchQuery{
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		PriceGte: priceQuery(c, "pricegte"),
		PriceLte: priceQuery(c, "priceLte"),
	}

	products, err := h.productService.FetchProducts(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return success(c, "Products fetched!", http.StatusOK, products)
}

// intQuery parses an integer query param, treating absent or unparsable
// values as unset.
func intQuery(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}

func priceQuery(c echo.Context, name string) *decimal.Decimal {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
