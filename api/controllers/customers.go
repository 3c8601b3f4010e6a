package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ijilanmax/printing-shop-tracker/api/responses"
	"github.com/Ijilanmax/printing-shop-tracker/internal/orders"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
)

// CustomerDetail returns the derived loyalty/segment view for one phone
// number, including the customer's order history.
func CustomerDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := strings.TrimSpace(chi.URLParam(r, "phone"))
		if phone == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "phone is required"))
			return
		}

		customer, err := svc.Customer(logg.WithPhone(r.Context(), phone), phone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}
