package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebrosario/bookhaven-backend/api/controllers"
	"github.com/calebrosario/bookhaven-backend/api/middleware"
	booksvc "github.com/calebrosario/bookhaven-backend/internal/books"
	"github.com/calebrosario/bookhaven-backend/pkg/config"
	"github.com/calebrosario/bookhaven-backend/pkg/db"
	"github.com/calebrosario/bookhaven-backend/pkg/logger"
	"github.com/calebrosario/bookhaven-backend/pkg/metrics"
	"github.com/calebrosario/bookhaven-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	bookService booksvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var redisP controllers.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/books", func(r chi.Router) {
		r.Get("/", controllers.ListBooks(bookService, logg))
		r.Post("/", controllers.CreateBook(bookService, logg))
		r.Get("/{bookId}", controllers.GetBook(bookService, logg))
		r.Put("/{bookId}", controllers.UpdateBook(bookService, logg))
		r.Delete("/{bookId}", controllers.DeleteBook(bookService, logg))
	})

	return r
}
