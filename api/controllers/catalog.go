package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ijilanmax/printing-shop-tracker/api/responses"
	"github.com/Ijilanmax/printing-shop-tracker/api/validators"
	"github.com/Ijilanmax/printing-shop-tracker/internal/catalog"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
)

func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

func ListCatalogOrders(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

type catalogOrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type createCatalogOrderRequest struct {
	CustomerID string                    `json:"customerId" validate:"required"`
	Items      []catalogOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Shipping   decimal.Decimal           `json:"shipping"`
}

func CreateCatalogOrder(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCatalogOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.CreateOrderInput{
			CustomerID: req.CustomerID,
			Shipping:   req.Shipping,
		}
		for _, item := range req.Items {
			input.Items = append(input.Items, catalog.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		order, err := svc.CreateOrder(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		logg.Info(logg.WithField(r.Context(), "catalog_order_id", order.ID.String()), "catalog order created")
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
