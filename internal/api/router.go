package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api/middleware"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/config"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, dashboardService *service.DashboardService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(dashboardService, cfg.Sheet.CurrencyPrefix)
			r.Get("/clients", dashboardHandler.Clients)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/sectors", dashboardHandler.Sectors)
			r.Get("/holdings", dashboardHandler.Holdings)
			r.Get("/charts/sectors.png", dashboardHandler.SectorChart)
			r.Get("/charts/holdings.png", dashboardHandler.HoldingsChart)
			r.Post("/refresh", dashboardHandler.Refresh)
		})
	})

	return r
}
