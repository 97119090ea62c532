package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hongminglow/jobtracker-be/internal/accounts"
	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/config"
	"github.com/hongminglow/jobtracker-be/internal/http/handlers"
	"github.com/hongminglow/jobtracker-be/internal/jobs"
	"github.com/hongminglow/jobtracker-be/internal/logging"
	"github.com/hongminglow/jobtracker-be/internal/middleware"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

// Store is what the server needs from a storage backend.
type Store interface {
	storage.AccountStore
	storage.JobStore
}

// Deps carries the collaborators the server wires together.
type Deps struct {
	Store    Store
	Log      logging.Logger
	Checkers []handlers.Checker
	ErrorLog *slog.Logger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware and routes and returns a ready server.
func New(cfg config.Config, deps Deps) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if deps.ErrorLog != nil {
		httpServer.ErrorLog = slog.NewLogLogger(deps.ErrorLog.Handler(), slog.LevelError)
	}
	return &Server{inner: httpServer}
}

// NewHandler builds the full middleware chain: request logging, CORS, then
// the router. Protected routes additionally pass the authentication gate.
func NewHandler(cfg config.Config, deps Deps) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	protect := func(next http.Handler) http.Handler {
		return middleware.Authenticate(tokens, next)
	}

	mux := http.NewServeMux()
	handlers.RegisterRoot(mux)
	handlers.NewHealthHandler(time.Now(), deps.Log, deps.Checkers...).Register(mux)
	handlers.NewAuthHandler(accounts.NewService(deps.Store, hasher, tokens), deps.Log).Register(mux, protect)
	handlers.NewJobsHandler(jobs.NewService(deps.Store), deps.Log).Register(mux, protect)

	return middleware.Logging(deps.Log, middleware.CORS(cfg.CORSOrigins, mux))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
