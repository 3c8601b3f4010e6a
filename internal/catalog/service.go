package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ijilanmax/printing-shop-tracker/pkg/db/models"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
)

// OrderItemInput is one requested line of a catalog order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries the order-creation screen's payload.
type CreateOrderInput struct {
	CustomerID string
	Items      []OrderItemInput
	Shipping   decimal.Decimal
}

// Service prices and records orders placed against the product catalog.
type Service interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListOrders(ctx context.Context) ([]models.CatalogOrder, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*models.CatalogOrder, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}
	return products, nil
}

func (s *service) ListOrders(ctx context.Context) ([]models.CatalogOrder, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing catalog orders")
	}
	return orders, nil
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.CatalogOrder, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customerId is required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	if input.Shipping.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping cannot be negative")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive").
				WithDetails(map[string]any{"productId": item.ProductID.String()})
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.repo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading products")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	order := &models.CatalogOrder{
		CustomerID: strings.TrimSpace(input.CustomerID),
		Shipping:   input.Shipping,
	}
	total := input.Shipping
	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"productId": item.ProductID.String()})
		}
		if !product.IsActive {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is no longer available").
				WithDetails(map[string]any{"productId": item.ProductID.String()})
		}
		lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Lines = append(order.Lines, models.CatalogOrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.Total = total

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating catalog order")
	}
	return created, nil
}
