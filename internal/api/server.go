package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"kotoba/internal/config"
	"kotoba/internal/library"
	"kotoba/internal/logging"
	"kotoba/internal/session"
	"kotoba/internal/wordinfo"
)

// Server exposes the session over HTTP.
type Server struct {
	cfg     *config.Config
	session *session.Session
	store   *library.Store
	words   *wordinfo.Service
	logger  *slog.Logger
	router  chi.Router
}

// NewServer wires handlers. store may be nil, in which case recent videos
// are neither recorded nor listed.
func NewServer(cfg *config.Config, sess *session.Session, store *library.Store, words *wordinfo.Service, logger *slog.Logger) *Server {
	if words == nil {
		words = wordinfo.NewService(nil, logger)
	}
	s := &Server{
		cfg:     cfg,
		session: sess,
		store:   store,
		words:   words,
		logger:  logging.NewComponentLogger(logger, "api-server"),
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(corsOptions(cfg.API.AllowedOrigins)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.With(limitBody).Post("/open", s.handleOpen)
		r.Get("/captions", s.handleCaptions)
		r.Get("/captions/active", s.handleActive)
		r.Get("/recent", s.handleRecent)
		r.Get("/word", s.handleWord)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured bind address until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	bind := strings.TrimSpace(s.cfg.Paths.APIBind)
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
