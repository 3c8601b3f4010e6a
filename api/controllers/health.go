package controllers

import (
	"net/http"

	"go.uber.org/multierr"

	"github.com/Ijilanmax/printing-shop-tracker/api/responses"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/config"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/db"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
	pkgredis "github.com/Ijilanmax/printing-shop-tracker/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PrintShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every hard dependency and reports the first combined
// failure as a 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, database db.Pinger, cache pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PrintShop-Env", cfg.App.Env)

		var combined error
		if database != nil {
			combined = multierr.Append(combined, database.Ping(r.Context()))
		}
		if cache != nil {
			combined = multierr.Append(combined, cache.Ping(r.Context()))
		}

		if combined != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
