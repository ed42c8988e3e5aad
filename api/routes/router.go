package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/hotelops-backend/api/controllers"
	"github.com/angelmondragon/hotelops-backend/api/middleware"
	"github.com/angelmondragon/hotelops-backend/api/responses"
	itemsvc "github.com/angelmondragon/hotelops-backend/internal/items"
	locationsvc "github.com/angelmondragon/hotelops-backend/internal/locations"
	"github.com/angelmondragon/hotelops-backend/internal/maintenance"
	"github.com/angelmondragon/hotelops-backend/internal/purchasing"
	"github.com/angelmondragon/hotelops-backend/internal/stock"
	suppliersvc "github.com/angelmondragon/hotelops-backend/internal/suppliers"
	usersvc "github.com/angelmondragon/hotelops-backend/internal/users"
	"github.com/angelmondragon/hotelops-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/angelmondragon/hotelops-backend/pkg/metrics"
	"github.com/angelmondragon/hotelops-backend/pkg/redis"
)

// Services bundles the domain services mounted under /api. A nil entry
// answers its routes with an internal error instead of panicking.
type Services struct {
	Items       itemsvc.Service
	Locations   locationsvc.Service
	Suppliers   suppliersvc.Service
	Users       usersvc.Service
	Stock       stock.Service
	Purchasing  purchasing.Service
	Maintenance maintenance.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	svc Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.NotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "Method not allowed"))
	})

	// a nil *redis.Client must not reach the middleware as a non-nil interface
	var idemStore redis.IdempotencyStore
	readyDeps := []controllers.Dependency{{Name: "database", Pinger: dbP}}
	if redisClient != nil {
		idemStore = redisClient
		readyDeps = append(readyDeps, controllers.Dependency{Name: "redis", Pinger: redisClient})
	}
	idempotent := middleware.Idempotency(idemStore, logg)

	r.Get("/health", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(logg, readyDeps...))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.HealthLive())

		r.Route("/items", func(r chi.Router) {
			r.Get("/", controllers.ListItems(svc.Items, logg))
			r.Post("/", controllers.CreateItem(svc.Items, logg))
			r.Get("/{id}", controllers.GetItem(svc.Items, logg))
			r.Put("/{id}", controllers.UpdateItem(svc.Items, logg))
			r.Delete("/{id}", controllers.DeleteItem(svc.Items, logg))
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", controllers.ListLocations(svc.Locations, logg))
			r.Post("/", controllers.CreateLocation(svc.Locations, logg))
			r.Get("/{id}", controllers.GetLocation(svc.Locations, logg))
			r.Put("/{id}", controllers.UpdateLocation(svc.Locations, logg))
			r.Delete("/{id}", controllers.DeleteLocation(svc.Locations, logg))
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.ListSuppliers(svc.Suppliers, logg))
			r.Post("/", controllers.CreateSupplier(svc.Suppliers, logg))
			r.Get("/{id}", controllers.GetSupplier(svc.Suppliers, logg))
			r.Put("/{id}", controllers.UpdateSupplier(svc.Suppliers, logg))
			r.Delete("/{id}", controllers.DeleteSupplier(svc.Suppliers, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(svc.Users, logg))
			r.Post("/", controllers.CreateUser(svc.Users, logg))
			r.Get("/{id}", controllers.GetUser(svc.Users, logg))
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", controllers.ListMovements(svc.Stock, logg))
			r.With(idempotent).Post("/receive", controllers.ReceiveStock(svc.Stock, logg))
			r.With(idempotent).Post("/issue", controllers.IssueStock(svc.Stock, logg))
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Get("/", controllers.ListPurchaseOrders(svc.Purchasing, logg))
			r.With(idempotent).Post("/", controllers.CreatePurchaseOrder(svc.Purchasing, logg))
			r.Get("/{id}", controllers.GetPurchaseOrder(svc.Purchasing, logg))
			r.Put("/{id}", controllers.UpdatePurchaseOrder(svc.Purchasing, logg))
			r.Delete("/{id}", controllers.DeletePurchaseOrder(svc.Purchasing, logg))
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", controllers.ListTickets(svc.Maintenance, logg))
			r.Post("/", controllers.CreateTicket(svc.Maintenance, logg))
			r.Get("/{id}", controllers.GetTicket(svc.Maintenance, logg))
			r.Put("/{id}", controllers.UpdateTicket(svc.Maintenance, logg))
			r.Put("/{id}/assign", controllers.AssignTicket(svc.Maintenance, logg))
			r.Put("/{id}/close", controllers.CloseTicket(svc.Maintenance, logg))
			r.Delete("/{id}", controllers.DeleteTicket(svc.Maintenance, logg))
		})
	})

	return r
}
