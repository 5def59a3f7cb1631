// Package web exposes the JSON API: auth, pantry items, the dashboard summary
// and recipe suggestions.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"shelfwise/internal/auth"
	"shelfwise/internal/recipes"
	"shelfwise/internal/store"
)

type Server struct {
	items  *store.ItemStore
	auth   *auth.Service
	finder recipes.Finder
	mux    *http.ServeMux
	logger *slog.Logger

	// now is the clock for the dashboard summary; tests swap it.
	now func() time.Time
}

func NewServer(items *store.ItemStore, authSvc *auth.Service, finder recipes.Finder, logger *slog.Logger) *Server {
	s := &Server{
		items:  items,
		auth:   authSvc,
		finder: finder,
		mux:    http.NewServeMux(),
		logger: logger,
		now:    time.Now,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	s.protected("GET /api/items", s.handleListItems)
	s.protected("POST /api/items", s.handleCreateItem)
	s.protected("PATCH /api/items/{id}", s.handleUpdateItem)
	s.protected("DELETE /api/items/{id}", s.handleDeleteItem)
	s.protected("GET /api/dashboard/summary", s.handleDashboardSummary)
	s.protected("GET /api/recipes", s.handleRecipes)
}

func (s *Server) protected(pattern string, handler http.HandlerFunc) {
	s.mux.Handle(pattern, s.auth.Middleware(handler))
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
