package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/catalog"
	"github.com/solarquote/solarquote/pkg/engine"
	"github.com/solarquote/solarquote/pkg/log"
)

// Server exposes the simulation engine and the catalog over HTTP.
type Server struct {
	catalog catalog.Provider
	engine  *engine.Engine

	listenAddr string
	httpServer *http.Server
	serverName string

	oidcAudience  string
	allowedEmails []string
	bypassAuth    bool
	verifier      tokenVerifier
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(c catalog.Provider) *Server {
	srv := &Server{
		catalog:    c,
		engine:     engine.New(c),
		serverName: "solarquote",
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	oidcAudience := lflag.String("oidc-audience", "", "Google OIDC audience/client ID for bearer auth (empty disables auth)")
	allowedEmails := lflag.String("allowed-emails", "", "comma-delimited list of email addresses allowed to call the API")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		srv.oidcAudience = *oidcAudience
		if *allowedEmails != "" {
			srv.allowedEmails = strings.Split(*allowedEmails, ",")
			for i, email := range srv.allowedEmails {
				srv.allowedEmails[i] = strings.TrimSpace(email)
			}
		}
		if srv.oidcAudience == "" {
			srv.bypassAuth = true
		} else {
			srv.initVerifier()
		}
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/simulate", s.handleSimulate)
	apiMux.HandleFunc("GET /api/list/tariffs", s.handleListTariffs)
	apiMux.HandleFunc("GET /api/list/packages", s.handleListPackages)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.authMiddleware(apiMux))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capture server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		// Context canceled, shut down gracefully
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
