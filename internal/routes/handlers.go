package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/just-nibble/git-dashboard/docs"
	"github.com/just-nibble/git-dashboard/internal/http/handlers"
	"github.com/just-nibble/git-dashboard/internal/http/middleware"
)

type Options struct {
	UserHeader string
	Log        zerolog.Logger
}

func NewRouter(dashboard *handlers.DashboardHandler, api *handlers.APIHandler, opts Options) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", dashboard.SignIn)
	router.HandleFunc("GET /dashboard", dashboard.Dashboard)

	router.HandleFunc("GET /api/repositories/latest", api.GetLatestRepositories)
	router.HandleFunc("GET /api/commits", api.GetCommits)
	router.HandleFunc("GET /api/contributions", api.GetContributions)

	router.HandleFunc("GET /healthz", api.Healthz)
	router.Handle("GET /metrics", promhttp.HandlerFor(
		prometheus.DefaultGatherer,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	))
	// Serve Swagger documentation
	router.HandleFunc("GET /swagger/", httpSwagger.WrapHandler)

	return middleware.Chain(router,
		middleware.Recovery(opts.Log),
		middleware.Logging(opts.Log),
		middleware.Identity(opts.UserHeader),
	)
}
