package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ijilanmax/printing-shop-tracker/api/responses"
	"github.com/Ijilanmax/printing-shop-tracker/api/validators"
	"github.com/Ijilanmax/printing-shop-tracker/internal/orders"
	"github.com/Ijilanmax/printing-shop-tracker/internal/tracker"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
)

type orderView struct {
	tracker.Order
	Status tracker.Status `json:"status"`
}

func viewOf(order tracker.Order) orderView {
	return orderView{Order: order, Status: order.Status()}
}

func viewsOf(list []tracker.Order) []orderView {
	out := make([]orderView, 0, len(list))
	for _, order := range list {
		out = append(out, viewOf(order))
	}
	return out
}

// ListOrders returns the order book, optionally narrowed by a lifecycle
// filter and a free-text query.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := tracker.ParseFilter(strings.TrimSpace(r.URL.Query().Get("filter")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid filter"))
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		responses.WriteSuccess(w, viewsOf(svc.List(r.Context(), filter, query)))
	}
}

type createOrderRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone" validate:"required"`
	Details      string `json:"details"`
}

func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), orders.CreateOrderInput{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Details:      req.Details,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithOrderID(r.Context(), order.ID)
		logg.Info(ctx, "order created")
		responses.WriteSuccessStatus(w, http.StatusCreated, viewOf(order))
	}
}

func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(order))
	}
}

type setCompletedRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

func SetOrderCompleted(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req setCompletedRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.SetCompleted(r.Context(), id, *req.Completed)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(order))
	}
}

type setPickedUpRequest struct {
	PickedUp *bool `json:"pickedUp" validate:"required"`
}

func SetOrderPickedUp(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req setPickedUpRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.SetPickedUp(r.Context(), id, *req.PickedUp)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(order))
	}
}

// DeleteOrder removes an order. Deleting an unknown id still returns 204, so
// a double-submitted confirm dialog never surfaces an error.
func DeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if svc.Remove(r.Context(), id) {
			logg.Info(logg.WithOrderID(r.Context(), id), "order removed")
		}
		responses.WriteNoContent(w)
	}
}

func OrdersSummary(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Summary(r.Context()))
	}
}

func orderID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	return id, nil
}
