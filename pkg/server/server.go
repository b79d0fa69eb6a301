package server

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gramod/pkg/config"
	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/observability"
	"github.com/matzehuels/gramod/pkg/pipeline"
)

// Options configures a Server.
type Options struct {
	// Base of the tower. Zero means config.DefaultBase.
	Base int

	// MaxModulus clamps larger inputs. Zero means config.DefaultMaxModulus.
	MaxModulus int

	// Metrics, when set, is mounted at /metrics.
	Metrics http.Handler

	Logger *log.Logger
}

// Server is the form frontend.
type Server struct {
	runner  *pipeline.Runner
	max     int
	metrics http.Handler
	logger  *log.Logger
}

// New creates a Server, filling zero options with defaults.
func New(opts Options) *Server {
	if opts.Base == 0 {
		opts.Base = config.DefaultBase
	}
	if opts.MaxModulus == 0 {
		opts.MaxModulus = config.DefaultMaxModulus
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Server{
		runner:  pipeline.NewRunner(opts.Base, opts.Logger),
		max:     opts.MaxModulus,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleForm)
	r.Post("/", s.handleForm)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	data := pageData{Max: s.max}

	if n, err := errors.ParseModulus(r.FormValue("text"), s.max); err == nil {
		res, err := s.runner.Compute(r.Context(), pipeline.Request{Modulus: n, Steps: true})
		if err != nil {
			s.logger.Error("compute failed", "modulus", n, "err", err)
			http.Error(w, errors.UserMessage(err), errors.HTTPStatus(err))
			return
		}
		data.Valid = true
		data.Modulus = res.Modulus
		data.Residue = res.Residue
		data.Trace = res.Trace
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// requestLogger tags each request with an id, logs it and reports it to the
// HTTP hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)

		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Microsecond))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", cfg.Addr, "max", s.max)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
