package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/RatingTable_Go/internal/handler"
	"github.com/osse101/RatingTable_Go/internal/logger"
	"github.com/osse101/RatingTable_Go/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, version string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(version),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// NewRouter builds the read-only route tree
func NewRouter(version string) http.Handler {
	handler.InitValidator()

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion(version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(TableCacheMiddleware)

		r.Route("/constants", func(r chi.Router) {
			r.Get("/", handler.HandleListConstants())
			r.Get("/{name}", handler.HandleGetConstant())
		})
		r.Get("/convert", handler.HandleConvert())
		r.Get("/rating", handler.HandleRatingFor())
		r.Get("/levels", handler.HandleLevel())
	})

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

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Only well-formed UUIDs from the caller are echoed back or logged.
		requestID := logger.GenerateRequestID()
		if id, err := uuid.Parse(r.Header.Get(HeaderRequestID)); err == nil {
			requestID = id.String()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
