package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/information-sharing-networks/custody-demo/internal/config"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
	"github.com/information-sharing-networks/custody-demo/internal/server/handlers"
	custodymiddleware "github.com/information-sharing-networks/custody-demo/internal/server/middleware"
	"github.com/information-sharing-networks/custody-demo/internal/version"
)

type Server struct {
	config    *config.ServerEnvironment
	logger    *slog.Logger
	router    *chi.Mux
	generator custody.KeyGenerator
}

// Option configures a Server
type Option func(*Server)

// WithKeyGenerator replaces the key generator used for identity generation (the default uses crypto/rand)
func WithKeyGenerator(generator custody.KeyGenerator) Option {
	return func(s *Server) {
		s.generator = generator
	}
}

func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
	opts ...Option,
) *Server {
	server := &Server{
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
	}

	for _, opt := range opts {
		opt(server)
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

// Router returns the http handler for the server (used in tests)
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	s.router.Use(custodymiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(custodymiddleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(custodymiddleware.RequestSizeLimit(s.config.MaxRequestSize))
}

func (s *Server) registerRoutes() {
	limits := custody.Limits{
		MaxDescriptionLength: s.config.MaxDescriptionLength,
		MaxKeyLength:         s.config.MaxKeyLength,
	}

	identityHandler := handlers.NewIdentityHandler(s.generator)
	transferHandler := handlers.NewTransferHandler(limits, s.config.SignBatchWorkers, s.config.SignBatchMaxRecords)

	s.router.Get("/health/live", handlers.HandleHealth)
	s.router.Get("/version", handlers.HandleVersion(version.Get()))

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/identities", identityHandler.HandleGenerateIdentity)
		r.Post("/identities/jwk", handlers.HandlePublicKeyJWK)

		r.Post("/transfers", transferHandler.HandleCreateTransfer)
		r.Post("/transfers/verify", transferHandler.HandleVerifyTransfer)
		r.Post("/transfers/accept", transferHandler.HandleAcceptTransfer)
		r.Post("/transfers/batch", transferHandler.HandleSignBatch)
	})

	// routes used by the original browser client
	s.router.Get("/wallet/new", identityHandler.HandleGenerateIdentity)
	s.router.Post("/generate/transaction", transferHandler.HandleLegacyGenerateTransaction)
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
