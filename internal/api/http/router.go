package http

import (
	"net/http"
	"time"

	"toolrent-backend/internal/metrics"
	"toolrent-backend/internal/security"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handler serves the HTTP API on top of the service layer.
type Handler struct {
	orders   service.OrderService
	tools    service.ToolService
	clients  service.ClientService
	auth     service.AuthService
	location *time.Location
}

type Options struct {
	Orders  service.OrderService
	Tools   service.ToolService
	Clients service.ClientService
	Auth    service.AuthService
	Tokens  security.TokenManager
	Metrics *metrics.Metrics

	// MetricsHandler serves /metrics; omitted when nil.
	MetricsHandler http.Handler
	Health         *HealthHandler

	// Location is used to read dates sent without an offset.
	Location *time.Location
}

func NewHandler(opts Options) *Handler {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		orders:   opts.Orders,
		tools:    opts.Tools,
		clients:  opts.Clients,
		auth:     opts.Auth,
		location: loc,
	}
}

// NewRouter wires every route behind request instrumentation and the auth
// middleware.
func NewRouter(opts Options) *mux.Router {
	h := NewHandler(opts)
	r := mux.NewRouter()
	r.Use(instrument(opts.Metrics), NewAuthMiddleware(opts.Tokens).Handler)

	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/users", h.CreateUser).Methods(http.MethodPost)

	r.HandleFunc("/api/tool", h.ListTools).Methods(http.MethodGet)
	r.HandleFunc("/api/tool", h.CreateTool).Methods(http.MethodPost)
	r.HandleFunc("/api/tool/{id}", h.GetTool).Methods(http.MethodGet)

	r.HandleFunc("/tool", h.ListTools).Methods(http.MethodGet)
	r.HandleFunc("/tool", h.CreateTool).Methods(http.MethodPost)
	r.HandleFunc("/tool/{id}", h.GetTool).Methods(http.MethodGet)
	r.HandleFunc("/tool/{id}", h.UpdateTool).Methods(http.MethodPut)
	r.HandleFunc("/tool/{id}", h.DeleteTool).Methods(http.MethodDelete)

	r.HandleFunc("/client", h.ListClients).Methods(http.MethodGet)
	r.HandleFunc("/client", h.CreateClient).Methods(http.MethodPost)
	r.HandleFunc("/client/{id}", h.GetClient).Methods(http.MethodGet)
	r.HandleFunc("/client/{id}", h.UpdateClient).Methods(http.MethodPut)
	r.HandleFunc("/client/{id}", h.DeleteClient).Methods(http.MethodDelete)

	// /order/new must be registered before /order/{id}
	r.HandleFunc("/order", h.ListOrders).Methods(http.MethodGet)
	r.HandleFunc("/order", h.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/order/new", h.NewOrderForm).Methods(http.MethodGet)
	r.HandleFunc("/order/{id}", h.GetOrder).Methods(http.MethodGet)
	r.HandleFunc("/order/{id}", h.UpdateOrder).Methods(http.MethodPut)
	r.HandleFunc("/order/{id}", h.DeleteOrder).Methods(http.MethodDelete)
	r.HandleFunc("/order/{id}/delete", h.ConfirmDeleteOrder).Methods(http.MethodGet)
	r.HandleFunc("/order/{id}/close", h.ConfirmCloseOrder).Methods(http.MethodGet)
	r.HandleFunc("/order/{id}/close", h.CloseOrder).Methods(http.MethodPost)

	if opts.Health != nil {
		r.Handle("/healthz", opts.Health).Methods(http.MethodGet)
	}
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler).Methods(http.MethodGet)
	}

	return r
}
