// Package httpapi exposes the FinTrack HTTP/JSON surface: registration,
// login, and the token-protected transaction endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/logging"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/services"
)

// AuthService is the subset of the auth service used by the handlers.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// LedgerService is the subset of the ledger service used by the handlers.
// The owner ID argument always comes from the validated token.
type LedgerService interface {
	Create(ctx context.Context, ownerID string, in services.TransactionInput) (*models.Transaction, error)
	List(ctx context.Context, ownerID string) ([]*models.Transaction, error)
	Delete(ctx context.Context, ownerID string, id string) (*models.Transaction, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	auth      AuthService
	ledger    LedgerService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, as AuthService, ls LedgerService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		auth:      as,
		ledger:    ls,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table with per-route middleware. Protected routes
// go through requireAuth; everything goes through CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.Handle("POST /transactions", s.requireAuth(http.HandlerFunc(s.handleCreateTransaction)))
	mux.Handle("GET /transactions", s.requireAuth(http.HandlerFunc(s.handleListTransactions)))
	mux.Handle("DELETE /transactions/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteTransaction)))

	return s.withCORS(s.withRequestLogging(mux))
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
