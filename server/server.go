package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/maxence-charriere/go-app/v9/pkg/app"

	"dashboard/checker"
	"dashboard/logger"
	"dashboard/theme"
	"dashboard/ui"
)

// Config holds server configuration.
type Config struct {
	Addr       string
	Name       string
	Color      string // forwarded to the client, see ui.EnvColor
	Navigation string
	AllowAll   bool // allow all CORS origins (dev mode)
}

// Server serves the wasm dashboard and its small JSON API.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Routes for the wasm app must already be
// registered with ui.RegisterRoutes.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg}
	s.router = s.buildRouter()
	return s
}

// AppHandler configures the go-app handler that serves the client.
func (s *Server) AppHandler() *app.Handler {
	return &app.Handler{
		Name:        s.cfg.Name,
		Title:       s.cfg.Name,
		Description: s.cfg.Name + " dashboard",
		RawHeaders: []string{
			`<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css">`,
			`<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">`,
		},
		LoadingLabel: "",
		Styles: []string{
			"/web/tokens.css",
			"/web/app.css",
		},
		Env: app.Environment{
			ui.EnvColor:      s.cfg.Color,
			ui.EnvTitle:      s.cfg.Name,
			ui.EnvNavigation: s.cfg.Navigation,
		},
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/logs", s.handleLogs)
	r.Get("/web/tokens.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(theme.Stylesheet()))
	})

	r.Handle("/*", s.AppHandler())

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := checker.CheckSystem(r.Context())
	if err != nil {
		logger.Error("Failed to get system status: %v", err)
		http.Error(w, "Failed to get system status: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, status)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}
	writeJSON(w, logger.Recent(limit))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("Starting %s dashboard on %s...", s.cfg.Name, s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
