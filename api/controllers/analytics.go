package controllers

import (
	"net/http"

	"github.com/Ijilanmax/printing-shop-tracker/api/responses"
	"github.com/Ijilanmax/printing-shop-tracker/api/validators"
	"github.com/Ijilanmax/printing-shop-tracker/internal/orders"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
)

const defaultTopCustomers = 5

// AnalyticsSummary returns the shop-wide analytics snapshot. The engine ranks
// every customer; the top query parameter only trims the response.
func AnalyticsSummary(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := validators.ParseQueryInt(r, "top", defaultTopCustomers, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap := svc.Analytics(r.Context())
		if len(snap.TopCustomers) > top {
			snap.TopCustomers = snap.TopCustomers[:top]
		}
		responses.WriteSuccess(w, snap)
	}
}
