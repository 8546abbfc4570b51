// internal/httpserver/server.go
//
// HTTP wiring for the beehive backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", GET /api/puzzle/daily/config.
//   - Word management endpoints under /api/words (require admin auth).
//   - Admin login/logout (JWT + cookie handling).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Puzzle generation failures surface as a single opaque error body;
//     guess verdicts never pass through this server, they are client-side.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lettergrid/beehive/internal/corpus"
	"github.com/lettergrid/beehive/internal/daily"
)

// Server bundles the router, the daily puzzle provider, and the word store.
type Server struct {
	r       *chi.Mux
	puzzles *daily.Provider
	words   *corpus.Store
	db      *sql.DB
}

// New constructs a Server, installs middleware, and registers routes.
func New(puzzles *daily.Provider, words *corpus.Store, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), puzzles: puzzles, words: words, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(15 * time.Second)) // bounds puzzle generation too
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"beehive-go","endpoints":["/health","GET /api/puzzle/daily/config","/api/words/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleWordCount)

	// Puzzle delivery — public, read-only.
	s.r.Get("/api/puzzle/daily/config", s.handlePuzzleConfig)

	// Admin session.
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	// Word management — gated.
	s.r.Route("/api/words", func(r chi.Router) {
		r.Use(s.requireAdmin())
		r.Get("/", s.handleListWords)
		r.Get("/search", s.handleSearchWords)
		r.Post("/", s.handleAddWords)
		r.Post("/remove", s.handleRemoveWords)
	})

	// JSON 404 for easier debugging.
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- helpers ------------------------------------

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
