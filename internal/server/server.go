// Package server собирает HTTP API сервера кейсов: маршруты, middleware
// и жизненный цикл http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/casesync/internal/server/handlers"
	"github.com/iudanet/casesync/internal/server/middleware"
	"github.com/iudanet/casesync/internal/server/storage"
)

const (
	defaultLoginRate   = 10
	defaultLoginWindow = time.Minute
	shutdownTimeout    = 10 * time.Second
)

// TokenService выпускает и проверяет access token
type TokenService interface {
	handlers.TokenIssuer
	middleware.TokenValidator
}

// PushHub рассылает уведомления и принимает WebSocket-подключения
type PushHub interface {
	handlers.Publisher
	Handler(w http.ResponseWriter, r *http.Request)
}

// Deps зависимости маршрутизатора
type Deps struct {
	Logger  *slog.Logger
	Users   storage.UserStorage
	Cases   storage.CaseStorage
	Tokens  TokenService
	Hub     PushHub
	DB      handlers.Pinger
	Version string

	// LoginRate попыток входа с одного IP за LoginWindow
	LoginRate   int
	LoginWindow time.Duration
}

// Router HTTP-маршрутизатор API
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close освобождает ресурсы маршрутизатора
func (r *Router) Close() {
	r.limiter.Stop()
}

// NewRouter регистрирует маршруты API
func NewRouter(deps Deps) *Router {
	if deps.LoginRate <= 0 {
		deps.LoginRate = defaultLoginRate
	}
	if deps.LoginWindow <= 0 {
		deps.LoginWindow = defaultLoginWindow
	}

	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Users, deps.Tokens)
	casesHandler := handlers.NewCasesHandler(deps.Logger, deps.Cases, deps.Hub)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.DB, deps.Version)

	limiter := middleware.NewRateLimiter(deps.LoginRate, deps.LoginWindow, deps.Logger)
	auth := middleware.AuthMiddleware(deps.Logger, deps.Tokens)
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/login", limiter.Middleware(http.HandlerFunc(authHandler.Login)))

	// Cases
	mux.Handle("GET /api/v1/cases", protected(casesHandler.ListCases))
	mux.Handle("GET /api/v1/cases/deleted", protected(casesHandler.ListDeletedCases))
	mux.Handle("GET /api/v1/case/{id}", protected(casesHandler.GetCase))
	mux.Handle("POST /api/v1/case", protected(casesHandler.CreateCase))
	mux.Handle("PUT /api/v1/case/{id}", protected(casesHandler.UpdateCase))
	mux.Handle("DELETE /api/v1/case/{id}", protected(casesHandler.DeleteCase))
	mux.Handle("PUT /api/v1/case/undelete/{id}", protected(casesHandler.RestoreCase))

	// Push
	mux.Handle("GET /api/v1/push", protected(deps.Hub.Handler))

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(deps.Logger, "/api/v1/health")(handler)
	handler = middleware.RecoveryMiddleware(deps.Logger)(handler)

	return &Router{Handler: handler, limiter: limiter}
}

// Server HTTP-сервер с graceful shutdown
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New создает сервер на addr
func New(addr string, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", "addr", ln.Addr().String())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server gracefully: %w", err)
	}
	return nil
}
