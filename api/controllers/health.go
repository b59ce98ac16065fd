package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/calebrosario/bookhaven-backend/api/responses"
	"github.com/calebrosario/bookhaven-backend/pkg/config"
	pkgerrors "github.com/calebrosario/bookhaven-backend/pkg/errors"
	"github.com/calebrosario/bookhaven-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is the readiness probe contract shared by backing services.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BookHaven-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the backing store responds. The
// redis pinger may be nil when caching is disabled.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP Pinger, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BookHaven-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database not configured"))
			return
		}
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "database not ready"))
			return
		}

		cache := "disabled"
		if redisP != nil {
			cache = "ok"
			if err := redisP.Ping(ctx); err != nil {
				// The cache is best-effort: report but stay ready.
				logg.Warn(logg.WithField(r.Context(), "component", "redis"), "cache ping failed")
				cache = "degraded"
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready", "cache": cache})
	}
}
