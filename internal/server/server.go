package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CrossBot_Go/internal/catalog"
	"github.com/osse101/CrossBot_Go/internal/database"
	"github.com/osse101/CrossBot_Go/internal/handler"
	"github.com/osse101/CrossBot_Go/internal/ledger"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/metrics"
	"github.com/osse101/CrossBot_Go/internal/puzzle"
	"github.com/osse101/CrossBot_Go/internal/settings"
)

// Services groups the domain services the router dispatches to
type Services struct {
	Puzzle   puzzle.Service
	Ledger   ledger.Service
	Catalog  catalog.Service
	Settings settings.Service
}

// Options configures the HTTP listener and its middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, services),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, dbPool database.Pool, services Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	proxies := parseTrustedProxies(opts.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, proxies, detector))
	r.Use(SecurityLoggingMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/times", func(r chi.Router) {
			r.Post("/", handler.HandleAddTime(services.Puzzle))
			r.Delete("/", handler.HandleRemoveTime(services.Puzzle))
			r.Get("/", handler.HandleListTimes(services.Puzzle))
			r.Get("/day", handler.HandleTimesOnDay(services.Puzzle))
		})

		r.Get("/streaks", handler.HandleGetStreaks(services.Puzzle))
		r.Post("/rewards/delta", handler.HandleRewardDelta(services.Puzzle))
		r.Get("/missed", handler.HandleGetMissed(services.Puzzle))
		r.Get("/announce", handler.HandleAnnounce(services.Puzzle))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(services.Ledger))
			r.Get("/{id}", handler.HandleGetAccount(services.Ledger))
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Post("/transfer", handler.HandleTransfer(services.Ledger))
			r.Post("/credit", handler.HandleCredit(services.Ledger))
			r.Post("/debit", handler.HandleDebit(services.Ledger))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(services.Catalog))
			r.Post("/grant", handler.HandleGrantItem(services.Ledger))
			r.Post("/revoke", handler.HandleRevokeItem(services.Ledger))
		})

		r.Route("/hat", func(r chi.Router) {
			r.Post("/", handler.HandleEquipHat(services.Ledger))
			r.Delete("/", handler.HandleUnequipHat(services.Ledger))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/settings", handler.HandleGetSettings(services.Settings))
			r.Put("/settings", handler.HandleUpdateSettings(services.Settings))
			r.Post("/catalog/sync", handler.HandleCatalogSync(services.Catalog))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags the request context with a request ID and logs start and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
