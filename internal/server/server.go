// Package server is the reference implementation of the REST backend the
// api_server provider syncs against: JWT-authenticated per-account CRUD over
// collections, requests and environments, held in memory.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/apivault/apivault/internal/config"
	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

type ctxKey string

// accountIDKey carries the authenticated account id through the request
// context.
const accountIDKey ctxKey = "account_id"

// Server is the reference API server.
type Server struct {
	auth   *authManager
	data   *dataStore
	logger *logger.Logger

	httpServer *http.Server
}

// New wires the server from configuration.
func New(cfg config.Server, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		auth:   newAuthManager(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration.Std()),
		data:   newDataStore(),
		logger: log,
	}
	s.httpServer = &http.Server{
		Addr:    cfg.Address,
		Handler: s.routes(),
	}
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Run starts serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("api server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", s.register)
		r.Post("/api/auth/login", s.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/api/collections", func(r chi.Router) {
			r.Post("/", handleCreate(s, s.data.collections, collectionUpdatedAt))
			r.Get("/", handleList(s, s.data.collections))
			r.Put("/{cloudID}", handleUpdate(s, s.data.collections, collectionUpdatedAt))
			r.Delete("/{cloudID}", handleDelete(s, s.data.collections))
		})
		r.Route("/api/requests", func(r chi.Router) {
			r.Post("/", handleCreate(s, s.data.requests, requestUpdatedAt))
			r.Get("/", handleList(s, s.data.requests))
			r.Put("/{cloudID}", handleUpdate(s, s.data.requests, requestUpdatedAt))
			r.Delete("/{cloudID}", handleDelete(s, s.data.requests))
		})
		r.Route("/api/environments", func(r chi.Router) {
			r.Post("/", handleCreate(s, s.data.environments, environmentUpdatedAt))
			r.Get("/", handleList(s, s.data.environments))
			r.Put("/{cloudID}", handleUpdate(s, s.data.environments, environmentUpdatedAt))
			r.Delete("/{cloudID}", handleDelete(s, s.data.environments))
		})
	})

	return router
}

// authMiddleware enforces JWT authentication and stores the account id in
// the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(header)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		id, err := s.auth.parseToken(tokenString)
		if err != nil {
			s.logger.Err(err).Msg("token rejected")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountIDKey, id)))
	})
}

func accountID(r *http.Request) string {
	id, _ := r.Context().Value(accountIDKey).(string)
	return id
}

func collectionUpdatedAt(c *models.Collection) *time.Time   { return &c.UpdatedAt }
func requestUpdatedAt(r *models.HTTPRequest) *time.Time     { return &r.UpdatedAt }
func environmentUpdatedAt(e *models.Environment) *time.Time { return &e.UpdatedAt }
