package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"

	_ "github.com/aussiebroadwan/healthinfo/api/healthinfo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// routePrefixes are the mount points of every resource route. The bare root
// serves older clients that predate /api.
var routePrefixes = []string{"", "/api"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *httpx.KeySet
	limiters     httpx.LimiterFactory
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	ProgramService *service.ProgramService
	ClientService  *service.ClientService

	// TrustedProxies may forward the client address; nil keys limits on the
	// socket peer.
	TrustedProxies *httpx.TrustedProxies
}

func NewRouter(
	keys *httpx.KeySet,
	limiters httpx.LimiterFactory,
	cors httpx.CORSConfig,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	if limiters == nil {
		limiters = httpx.NewMemoryLimiter
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		limiters:     limiters,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerResources()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Health Information Service API
//	@version		0.1.0
//	@description	Manage health programs and the clients enrolled in them.
//	@description
//	@description	Every resource route is also served without the /api prefix.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/healthinfo
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-KEY
//	@description				Shared secret from the API_KEYS allow-list.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerResources() {
	// Limiters are built once so every mount point draws from the same counters
	clientsLimiter := r.limiters(httpx.ClientsLimit)
	dailyLimiter := r.limiters(httpx.DailyLimit)
	hourlyLimiter := r.limiters(httpx.HourlyLimit)

	// Rate limit runs before the gate so rejected keys still count
	clientsRoute := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.RateLimitByClientIP(r.TrustedProxies, clientsLimiter),
			httpx.APIKeyMiddleware(r.keys),
		)
	}
	defaultRoute := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.RateLimitByClientIP(r.TrustedProxies, dailyLimiter, hourlyLimiter),
			httpx.APIKeyMiddleware(r.keys),
		)
	}

	programs := &ProgramsHandler{ProgramService: r.ProgramService}
	clients := &ClientsHandler{ClientService: r.ClientService}
	enroll := &EnrollHandler{ClientService: r.ClientService}

	for _, prefix := range routePrefixes {
		r.Mux.Handle("POST "+prefix+"/programs", defaultRoute(http.HandlerFunc(programs.HandleCreate)))
		r.Mux.Handle("GET "+prefix+"/programs", defaultRoute(http.HandlerFunc(programs.HandleList)))
		r.Mux.Handle("DELETE "+prefix+"/programs/{id}", defaultRoute(http.HandlerFunc(programs.HandleDelete)))

		r.Mux.Handle("POST "+prefix+"/clients", clientsRoute(http.HandlerFunc(clients.HandleCreate)))
		r.Mux.Handle("GET "+prefix+"/clients", clientsRoute(http.HandlerFunc(clients.HandleList)))
		r.Mux.Handle("GET "+prefix+"/clients/search", defaultRoute(http.HandlerFunc(clients.HandleSearch)))
		r.Mux.Handle("GET "+prefix+"/clients/{id}", defaultRoute(http.HandlerFunc(clients.HandleProfile)))
		r.Mux.Handle("DELETE "+prefix+"/clients/{id}", defaultRoute(http.HandlerFunc(clients.HandleDelete)))

		r.Mux.Handle("POST "+prefix+"/enroll", defaultRoute(enroll))
	}
}

func (r *Router) registerSystem() {
	// Probes stay ungated and unlimited so orchestrators can poll freely
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
