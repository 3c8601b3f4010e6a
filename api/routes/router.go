package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ijilanmax/printing-shop-tracker/api/controllers"
	"github.com/Ijilanmax/printing-shop-tracker/api/middleware"
	"github.com/Ijilanmax/printing-shop-tracker/internal/catalog"
	"github.com/Ijilanmax/printing-shop-tracker/internal/orders"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/config"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/db"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
	pkgredis "github.com/Ijilanmax/printing-shop-tracker/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	registry *prometheus.Registry,
	ordersService orders.Service,
	catalogService catalog.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	idempotency := middleware.Idempotency(redisClient, logg, cfg.Idempotency.TTL)

	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/orders", controllers.ListOrders(ordersService, logg))
			r.With(idempotency).Post("/orders", controllers.CreateOrder(ordersService, logg))
			r.Get("/orders/summary", controllers.OrdersSummary(ordersService, logg))
			r.Route("/orders/{orderId}", func(r chi.Router) {
				r.Get("/", controllers.GetOrder(ordersService, logg))
				r.Patch("/completed", controllers.SetOrderCompleted(ordersService, logg))
				r.Patch("/picked-up", controllers.SetOrderPickedUp(ordersService, logg))
				r.Delete("/", controllers.DeleteOrder(ordersService, logg))
			})

			r.Get("/customers/{phone}", controllers.CustomerDetail(ordersService, logg))
			r.Get("/analytics/summary", controllers.AnalyticsSummary(ordersService, logg))
		})

		// Legacy surface consumed by the order-creation screen.
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/orders", controllers.ListCatalogOrders(catalogService, logg))
		r.With(idempotency).Post("/orders", controllers.CreateCatalogOrder(catalogService, logg))
	})

	return r
}
