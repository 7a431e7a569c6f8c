package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shaibs3/pagecatalog/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Handler is implemented by every component that contributes routes
type Handler interface {
	RegisterRoutes(router *mux.Router, logger *zap.Logger)
}

type Router struct {
	router   *mux.Router
	limiter  *rate.Limiter
	logger   *zap.Logger
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func NewRouter(limiter *rate.Limiter, tel *telemetry.Telemetry, logger *zap.Logger, handlers []Handler) *Router {
	r := &Router{
		router:  mux.NewRouter(),
		limiter: limiter,
		logger:  logger.Named("router"),
	}

	if tel != nil {
		r.initMetrics(tel.Meter)
		r.router.Handle("/metrics", tel.MetricsHandler()).Methods(http.MethodGet)
	}

	api := r.router.NewRoute().Subrouter()
	api.Use(r.loggingMiddleware, r.metricsMiddleware, r.rateLimitMiddleware)
	for _, h := range handlers {
		h.RegisterRoutes(api, logger)
	}

	return r
}

func (r *Router) initMetrics(meter metric.Meter) {
	var err error
	r.requests, err = meter.Int64Counter("http_requests_total",
		metric.WithDescription("HTTP requests by route and status"))
	if err != nil {
		r.logger.Error("failed to create request counter", zap.Error(err))
	}
	r.duration, err = meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"))
	if err != nil {
		r.logger.Error("failed to create request histogram", zap.Error(err))
	}
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// CreateServer wraps the router in an http.Server listening on addr
func (r *Router) CreateServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func (r *Router) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.limiter != nil && !r.limiter.Allow() {
			r.logger.Warn("rate limit exceeded",
				zap.String("path", req.URL.Path),
				zap.String("remote_addr", req.RemoteAddr))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (r *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		r.logger.Debug("request handled",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

func (r *Router) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.requests == nil || r.duration == nil {
			next.ServeHTTP(w, req)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		attrs := metric.WithAttributes(
			attribute.String("method", req.Method),
			attribute.String("route", routeTemplate(req)),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		r.requests.Add(req.Context(), 1, attrs)
		r.duration.Record(req.Context(), time.Since(start).Seconds(), attrs)
	})
}

// routeTemplate is the mux path template of the matched route, e.g. /v1/pages/{pageId}
func routeTemplate(req *http.Request) string {
	if route := mux.CurrentRoute(req); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
