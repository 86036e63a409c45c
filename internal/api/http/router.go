package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"olms-backend/internal/config"
	"olms-backend/internal/service"
)

// Services are the handlers' dependencies.
type Services struct {
	Auth      service.AuthService
	Customers service.CustomerService
	Receipts  service.ReceiptService
	Uploads   service.UploadService
	Bootstrap service.BootstrapService
	Seed      service.SeedService
}

type Options struct {
	MaxUploadBytes int64
	DB             Pinger
}

// NewRouter wires every route. Route names key the security table in
// config.EndpointSecurityConfig.
func NewRouter(svc Services, opts Options) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger, metricsMiddleware, (&authMiddleware{auth: svc.Auth}).Handler)

	authHandler := NewAuthHandler(svc.Auth)
	customerHandler := NewCustomerHandler(svc.Customers)
	billHandler := NewBillHandler(svc.Receipts)
	uploadHandler := NewUploadHandler(svc.Uploads, opts.MaxUploadBytes)
	systemHandler := NewSystemHandler(svc.Bootstrap, svc.Seed, opts.DB)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost).Name(config.RouteLogin)
	api.HandleFunc("/customers/{id}/history", customerHandler.History).Methods(http.MethodGet).Name(config.RouteCustomerHistory)
	api.HandleFunc("/bills", billHandler.Generate).Methods(http.MethodGet).Name(config.RouteBills)
	api.HandleFunc("/upload", uploadHandler.Upload).Methods(http.MethodPost).Name(config.RouteUpload)
	api.HandleFunc("/upload", uploadHandler.Download).Methods(http.MethodGet).Name(config.RouteUploadGet)
	api.HandleFunc("/init", systemHandler.Init).Methods(http.MethodGet).Name(config.RouteInit)
	api.HandleFunc("/seed", systemHandler.Seed).Methods(http.MethodPost).Name(config.RouteSeed)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet).Name(config.RouteMetrics)
	router.HandleFunc("/healthz", systemHandler.Health).Methods(http.MethodGet).Name(config.RouteHealth)

	return router
}
