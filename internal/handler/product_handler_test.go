package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProducts(ctx context.Context, inputs []service.CreateProductInput) ([]model.Product, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, patch service.ProductPatch) (*model.Product, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) DeleteProducts(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockProductService) FetchProducts(ctx context.Context, query service.FetchQuery) ([]model.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Fetch_ParsesQuery(t *testing.T) {
	mockSvc := new(MockProductService)
	mockSvc.On("FetchProducts", mock.Anything, mock.MatchedBy(func(q service.FetchQuery) bool {
		return q.Page == 2 &&
			q.Limit == 5 &&
			q.Category == "Electronics" &&
			q.Search == "laptop" &&
			q.PriceGte != nil && q.PriceGte.Equal(decimal.NewFromInt(100)) &&
			q.PriceLte != nil && q.PriceLte.Equal(decimal.NewFromInt(2000))
	})).Return([]model.Product{{ID: "p1", Name: "Laptop"}}, nil)

	h := NewProductHandler(mockSvc)
	c, rec := newTestContext(http.MethodGet,
		"/api/v1/products/fetch?page=2&limit=5&category=Electronics&search=laptop&priceLte=2000&pricegte=100", "")

	require.NoError(t, h.Fetch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Products fetched!", envelope.Message)
	assert.True(t, envelope.Status)
	assert.Equal(t, http.StatusOK, envelope.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestProductHandler_Fetch_UnparsableParamsAreIgnored(t *testing.T) {
	mockSvc := new(MockProductService)
	mockSvc.On("FetchProducts", mock.Anything, mock.MatchedBy(func(q service.FetchQuery) bool {
		return q.Page == 0 && q.Limit == 0 && q.PriceGte == nil && q.PriceLte == nil
	})).Return([]model.Product{}, nil)

	h := NewProductHandler(mockSvc)
	c, _ := newTestContext(http.MethodGet, "/api/v1/products/fetch?page=abc&priceLte=xyz", "")

	require.NoError(t, h.Fetch(c))
	mockSvc.AssertExpectations(t)
}

func TestProductHandler_Create_EnvelopeCarries201(t *testing.T) {
	mockSvc := new(MockProductService)
	mockSvc.On("CreateProducts", mock.Anything, mock.MatchedBy(func(inputs []service.CreateProductInput) bool {
		return len(inputs) == 1 &&
			inputs[0].Name == "Laptop" &&
			inputs[0].Price.Equal(decimal.NewFromInt(1500))
	})).Return([]model.Product{{ID: "p1", Name: "Laptop"}}, nil)

	h := NewProductHandler(mockSvc)
	body := `{"products":[{"name":"Laptop","description":"Gaming laptop","category":"Electronics","price":1500}]}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/products/create", body)

	require.NoError(t, h.Create(c))

	// Transport status stays 200; the envelope carries the 201.
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestProductHandler_Create_RejectsNegativePrice(t *testing.T) {
	h := NewProductHandler(new(MockProductService))
	body := `{"products":[{"name":"Laptop","description":"Gaming laptop","category":"Electronics","price":-5}]}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/products/create", body)

	err := h.Create(c)

	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
}

func TestProductHandler_Delete_EmptyDataObject(t *testing.T) {
	mockSvc := new(MockProductService)
	mockSvc.On("DeleteProducts", mock.Anything, []string{"a", "b"}).Return(nil)

	h := NewProductHandler(mockSvc)
	c, rec := newTestContext(http.MethodPost, "/api/v1/products/delete", `{"ids":["a","b"]}`)

	require.NoError(t, h.Delete(c))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `{}`, string(raw["data"]))
	mockSvc.AssertExpectations(t)
}
