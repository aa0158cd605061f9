// Package httpapi exposes the mail services as a REST JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/intramail/intramail/internal/logging"
	"github.com/intramail/intramail/internal/server/config"
	"github.com/intramail/intramail/internal/server/services"
)

// Version is reported by the health route.
const Version = "0.1.0"

type Server struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	messages     *services.MessageService
	jwtSecret    []byte
	maxBodyBytes int64
	limiter      *RateLimiter
	metrics      *Metrics
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ms *services.MessageService) *Server {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		logger:       l.With("module", "http_server"),
		users:        us,
		messages:     ms,
		jwtSecret:    []byte(cfg.SecretKey),
		maxBodyBytes: cfg.MaxBodyBytes,
		limiter:      NewRateLimiter(cfg.RequestsPerMinute),
		metrics:      NewMetrics(),
	}
}

// Routes assembles the router and middleware chain.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(s.requestLogger)
	r.Use(s.limiter.Middleware)
	r.Use(s.bodyLimiter)
	r.Use(s.authenticator)

	r.Get("/", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Get("/messages", s.handleListMessages)
		r.Post("/messages", s.handleSendMessage)
	})

	return r
}

// Run serves the REST API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)

		s.limiter.Stop()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
