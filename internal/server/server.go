package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openmars/tfm-server-go/internal/auth"
	"github.com/openmars/tfm-server-go/internal/config"
	"github.com/openmars/tfm-server-go/internal/repository"
)

// Server is the HTTP and WebSocket surface of the game server.
type Server struct {
	cfg    *config.Config
	games  *GameManager
	users  *repository.UserRepository
	tokens *auth.TokenStore
	hub    *Hub
	log    *zap.Logger

	upgrader   websocket.Upgrader
	httpServer *http.Server
}

func New(cfg *config.Config, games *GameManager, users *repository.UserRepository, tokens *auth.TokenStore, log *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		games:  games,
		users:  users,
		tokens: tokens,
		hub:    NewHub(log),
		log:    log,

		upgrader: newUpgrader(cfg.Server.AllowedOrigins),
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// Start runs the hub loop and the HTTP listener. It blocks until the
// listener fails or is shut down.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)
	s.log.Info("http server listening", zap.String("address", s.cfg.Server.Address))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requireAuth wraps a handler with bearer-token authentication.
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if len(token) > len(prefix) && token[:len(prefix)] == prefix {
			token = token[len(prefix):]
		}
		username, ok := s.tokens.Validate(token)
		if !ok {
			httpError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next(w, r, username)
	}
}
