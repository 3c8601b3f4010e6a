package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Ijilanmax/printing-shop-tracker/internal/catalog"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/db/models"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
)

type stubCatalogService struct {
	products  []models.Product
	created   *catalog.CreateOrderInput
	createErr error
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubCatalogService) ListOrders(ctx context.Context) ([]models.CatalogOrder, error) {
	return nil, nil
}

func (s *stubCatalogService) CreateOrder(ctx context.Context, input catalog.CreateOrderInput) (*models.CatalogOrder, error) {
	s.created = &input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.CatalogOrder{
		ID:         uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		CustomerID: input.CustomerID,
		Shipping:   input.Shipping,
	}, nil
}

func catalogRouter(svc catalog.Service) http.Handler {
	logg := testLogger()
	r := chi.NewRouter()
	r.Get("/api/products", ListProducts(svc, logg))
	r.Get("/api/orders", ListCatalogOrders(svc, logg))
	r.Post("/api/orders", CreateCatalogOrder(svc, logg))
	return r
}

func TestListProductsHandler(t *testing.T) {
	svc := &stubCatalogService{products: []models.Product{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), SKU: "FLY-100", Name: "Glossy flyer", UnitPrice: decimal.RequireFromString("0.35"), IsActive: true},
	}}
	rec := doRequest(t, catalogRouter(svc), http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "FLY-100")
}

func TestCreateCatalogOrderHandler(t *testing.T) {
	svc := &stubCatalogService{}
	rec := doRequest(t, catalogRouter(svc), http.MethodPost, "/api/orders",
		`{"customerId":"cust-42","items":[{"productId":"11111111-1111-1111-1111-111111111111","quantity":2}],"shipping":5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	require.Equal(t, "cust-42", svc.created.CustomerID)
	require.Len(t, svc.created.Items, 1)
	require.Equal(t, 2, svc.created.Items[0].Quantity)
	require.True(t, svc.created.Shipping.Equal(decimal.NewFromInt(5)))
}

func TestCreateCatalogOrderHandlerValidation(t *testing.T) {
	router := catalogRouter(&stubCatalogService{})

	rec := doRequest(t, router, http.MethodPost, "/api/orders", `{"items":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/orders",
		`{"customerId":"cust-42","items":[{"productId":"not-a-uuid","quantity":1}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCatalogOrderHandlerUnknownProduct(t *testing.T) {
	svc := &stubCatalogService{createErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	rec := doRequest(t, catalogRouter(svc), http.MethodPost, "/api/orders",
		`{"customerId":"cust-42","items":[{"productId":"11111111-1111-1111-1111-111111111111","quantity":1}]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
