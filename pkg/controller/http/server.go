package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/frontend"
	"github.com/secmon-lab/talos/pkg/usecase"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/secmon-lab/talos/pkg/utils/safe"
)

type Server struct {
	router         *chi.Mux
	uc             *usecase.UseCase
	allowedOrigins []string
}

type Options func(*Server)

// WithAllowedOrigins restricts cross-origin API access to the given
// origins. The default allows any origin.
func WithAllowedOrigins(origins []string) Options {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

func New(uc *usecase.UseCase, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router:         r,
		uc:             uc,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/assessments", s.submitAssessmentHandler)
		r.Get("/assessments", s.listAssessmentsHandler)
		r.Get("/assessments/{assessmentID}", s.getAssessmentHandler)
		r.Get("/stats", s.statsHandler)
		r.Get("/mitigations", s.listMitigationsHandler)
		r.Get("/factors", s.listFactorsHandler)
		r.Get("/export", s.exportHandler)
		r.Get("/catalog", s.catalogHandler)
	})

	// Static file serving for SPA (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}

	r.Get("/*", spaHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		// If the path is empty, serve index.html
		if urlPath == "" {
			urlPath = "index.html"
		}

		// Try to open the file to check if it exists
		if file, err := staticFS.Open(urlPath); err != nil {
			// File not found, serve index.html for SPA routing
			if indexFile, err := staticFS.Open("index.html"); err == nil {
				defer safe.Close(r.Context(), indexFile)
				w.Header().Set("Content-Type", "text/html")
				safe.Copy(r.Context(), w, indexFile)
				return
			}

			// If index.html is also not found, return 404
			http.NotFound(w, r)
			return
		} else {
			// File exists, close it and let fileServer handle it
			safe.Close(r.Context(), file)
		}

		// Serve the requested file using the file server
		fileServer.ServeHTTP(w, r)
	}
}
