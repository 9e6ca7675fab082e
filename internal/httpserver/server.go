// internal/httpserver/server.go
//
// HTTP server wiring for the verdict service.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, CORS, timeouts, panic recovery).
//   - Public endpoints: "/" (browser page), "/health", "/api".
//   - Guess endpoints: POST /guess, GET /session/{id}.
//   - Optional static files (the wasm client build) under /app/.
//
// Notes:
//   - CORS is single-origin and credentials-friendly.
//   - Error bodies are {"error":"<code>"}.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cheez/assets"
	"github.com/robalobadob/cheez/internal/verdict"
)

// Options configures a Server.
type Options struct {
	ClientOrigin string        // allowed CORS origin; defaults to http://localhost:5173
	StaticDir    string        // served under /app/ when set
	Timeout      time.Duration // per-request bound; defaults to 10s
	Logger       *zerolog.Logger
}

// Server bundles the router and the verdict service.
type Server struct {
	r        *chi.Mux
	verdicts *verdict.Service
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *verdict.Service, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	lg := log.Logger
	if opts.Logger != nil {
		lg = *opts.Logger
	}

	s := &Server{r: chi.NewRouter(), verdicts: svc}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(lg))         // request-scoped logger
	s.r.Use(accessLog)                   // one line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(corsFor(opts.ClientOrigin))  // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"service":     "cheez",
			"maxAttempts": svc.MaxAttempts(),
			"endpoints":   []string{"/health", "POST /guess", "GET /session/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- browser page ---
	s.r.Get("/", s.handleIndex)
	if opts.StaticDir != "" {
		static := http.StripPrefix("/app/", http.FileServer(http.Dir(opts.StaticDir)))
		s.r.Handle("/app/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Let the file server pick the type (application/wasm, text/javascript).
			w.Header().Del("Content-Type")
			static.ServeHTTP(w, r)
		}))
	}

	s.mountGuess(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleIndex serves the embedded browser page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.IndexHTML()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("read index page")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one structured line per request, tagged with the chi request ID.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("took", d).
		Msg("request")
})

// writeError writes a {"error":code} body with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
