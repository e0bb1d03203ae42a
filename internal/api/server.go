// Package api exposes the wall assembly planner over HTTP. The server
// speaks JSON only; rendering is left to the exporters and clients.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/pkg/errors"
)

// Server serves the assembly planner API.
type Server struct {
	addr   string
	logger *log.Logger
	http   *http.Server
}

// NewServer builds a Server listening on addr.
func NewServer(addr string, logger *log.Logger) *Server {
	s := &Server{addr: addr, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assembly", s.handleAssembly)
		r.Post("/payload", s.handlePayload)
		r.Get("/systems", s.handleSystems)
		r.Get("/systems/{name}", s.handleSystem)
	})

	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return s.http.Shutdown(shutdownCtx)
}

// assemblyResponse is the full planning result for one input.
type assemblyResponse struct {
	Config   *model.WallAssemblyConfig  `json:"config"`
	Warnings []model.NarrowBlockWarning `json:"warnings"`
}

func (s *Server) handleAssembly(w http.ResponseWriter, r *http.Request) {
	var in model.AssemblyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidFormat, "malformed request body"))
		return
	}

	cfg, err := model.BuildConfig(in)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.writeJSON(w, http.StatusOK, assemblyResponse{
		Config:   cfg,
		Warnings: cfg.Warnings(),
	})
}

func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	var in model.AssemblyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidFormat, "malformed request body"))
		return
	}

	cfg, err := model.BuildConfig(in)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.writeJSON(w, http.StatusOK, cfg.Payload())
}

func (s *Server) handleSystems(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, model.AllSystems())
}

func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	system, err := model.FindSystem(name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, system)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
