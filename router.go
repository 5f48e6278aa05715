package apistarter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/apistarter/handler"
	"github.com/dmitrymomot/apistarter/modules"
	"github.com/dmitrymomot/apistarter/pkg/bodyparser"
	"github.com/dmitrymomot/apistarter/pkg/clientip"
	"github.com/dmitrymomot/apistarter/pkg/environment"
	"github.com/dmitrymomot/apistarter/pkg/httpserver"
	"github.com/dmitrymomot/apistarter/pkg/logger"
	"github.com/dmitrymomot/apistarter/pkg/metrics"
	"github.com/dmitrymomot/apistarter/pkg/requestid"
)

// APIPrefix is the mount point of the health check, readiness probe and route table.
const APIPrefix = "/api/v1"

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	logger  *slog.Logger
	routes  []modules.Route
	checks  []httpserver.Check
	metrics *metrics.Metrics
	now     func() time.Time
}

// WithLogger sets the logger used for request logs and the error formatter.
func WithLogger(l *slog.Logger) RouterOption {
	return func(o *routerOptions) { o.logger = l }
}

// WithRoutes replaces the default route table from modules.Routes.
func WithRoutes(routes ...modules.Route) RouterOption {
	return func(o *routerOptions) { o.routes = routes }
}

// WithReadinessChecks adds dependency probes to GET /api/v1/ready.
func WithReadinessChecks(checks ...httpserver.Check) RouterOption {
	return func(o *routerOptions) { o.checks = append(o.checks, checks...) }
}

// WithMetrics uses m instead of creating a registry. Ignored when metrics are disabled.
func WithMetrics(m *metrics.Metrics) RouterOption {
	if m == nil {
		panic("apistarter.WithMetrics: nil metrics")
	}
	return func(o *routerOptions) { o.metrics = m }
}

// WithClock overrides the time source of the health check.
func WithClock(now func() time.Time) RouterOption {
	if now == nil {
		panic("apistarter.WithClock: nil clock")
	}
	return func(o *routerOptions) { o.now = now }
}

// NewRouter builds the HTTP handler. The middleware order is fixed and no
// route bypasses CORS or body parsing.
func NewRouter(cfg Config, opts ...RouterOption) http.Handler {
	o := &routerOptions{
		routes: modules.Routes(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}

	env := cfg.Env()
	errHandler := handler.NewErrorHandler(o.logger, handler.ErrorHandlerConfig{Environment: env})

	r := chi.NewRouter()
	r.NotFound(handler.NotFound(errHandler))
	r.MethodNotAllowed(handler.MethodNotAllowed(errHandler))

	var resolverOpts []clientip.Option
	if cfg.TrustProxy {
		resolverOpts = append(resolverOpts, clientip.WithTrustedHeaders(clientip.ProxyHeaders...))
	}

	r.Use(
		requestid.Middleware,
		clientip.Middleware(clientip.NewResolver(resolverOpts...)),
		environment.Middleware(env),
		logger.Middleware(o.logger),
		handler.Recoverer(errHandler),
	)
	if cfg.MetricsEnabled {
		if o.metrics == nil {
			o.metrics = metrics.New(metrics.WithConstLabels(map[string]string{"service": cfg.ServiceName}))
		}
		r.Use(o.metrics.Middleware)
	}

	bodyOpts := append(cfg.Body.Options(), bodyparser.WithErrorHandler(bodyparser.ErrorHandler(errHandler)))
	r.Use(
		corsMiddleware(cfg.CORSOrigin),
		bodyparser.JSON(bodyOpts...),
		bodyparser.URLEncoded(bodyOpts...),
	)

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", o.metrics.Handler())
	}

	r.Route(APIPrefix, func(api chi.Router) {
		api.Get("/health", HealthHandler(env, o.now))
		api.Get("/ready", httpserver.ReadinessHandler(o.logger, o.checks...))
		modules.Mount(api, o.routes...)
	})

	return r
}

// corsMiddleware allows a single origin with credentials.
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestid.Header},
		AllowCredentials: true,
	})
}
