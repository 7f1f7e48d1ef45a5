package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/ops-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ops-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/ops-dashboard/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	Logger   *slog.Logger
	Visitors *rl.Visitors
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(mw.RequestLogger(opts.Logger))
	}
	if opts.Visitors != nil {
		r.Use(mw.RateLimit(opts.Visitors))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/collections/{name}", handlers.GetCollectionHandler)
	r.Post("/collections/{name}", handlers.CreateRecordHandler)
	r.Post("/collections/{name}/import", handlers.ImportRecordsHandler)
	r.Get("/collections/{name}/{id}", handlers.GetRecordByIDHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	r.Get("/metrics/prometheus", handlers.PrometheusMetricsHandler)

	r.Get("/presets/{collection}", handlers.ListPresetsHandler)
	r.Get("/presets/{collection}/{name}", handlers.GetPresetHandler)
	r.Put("/presets/{collection}/{name}", handlers.PutPresetHandler)
	r.Delete("/presets/{collection}/{name}", handlers.DeletePresetHandler)

	return r
}
