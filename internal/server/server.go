// Package server exposes a memory adapter over HTTP so a tree can be
// inspected and driven from a browser or curl, playing the part of the
// assistive technology:
//
//	GET  /healthz
//	POST /activate                      initial tree, as events
//	GET  /tree                          depth-first snapshot
//	PUT  /tree                          apply a YAML tree update
//	GET  /nodes/{id}
//	POST /nodes/{id}/actions/{action}   optional JSON action data
//	GET  /requests                      requests delivered to the app
//	GET  /events                        recently raised events
//	GET  /render?format=svg|dot&detailed=1
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/adapter/memory"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

// Server is the inspector. It owns a memory adapter whose action handler
// records every delivered request.
type Server struct {
	adapter *memory.Adapter
	classes *node.ClassSet
	log     *slog.Logger
	limits  types.Limits
	router  chi.Router

	mu       sync.Mutex
	requests  []action.Request
	onRequest func(action.Request)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option { return func(s *Server) { s.log = l } }

// WithLimits bounds updates sent with PUT /tree.
func WithLimits(l types.Limits) Option { return func(s *Server) { s.limits = l } }

// WithRequestHook forwards each delivered request to fn.
func WithRequestHook(fn func(action.Request)) Option {
	return func(s *Server) { s.onRequest = fn }
}

// New builds an inspector whose adapter calls initial on activation.
func New(initial adapter.Factory, opts ...Option) (*Server, error) {
	s := &Server{classes: node.NewClassSet(), limits: types.DefaultLimits()}
	for _, o := range opts {
		o(s)
	}
	s.log = logger.Or(s.log)
	a, err := memory.New(initial, action.HandlerFunc(s.deliver),
		memory.WithLogger(s.log), memory.WithLimits(s.limits))
	if err != nil {
		return nil, err
	}
	s.adapter = a
	s.router = s.routes()
	return s, nil
}

// Adapter returns the adapter behind the inspector.
func (s *Server) Adapter() *memory.Adapter { return s.adapter }

// Requests returns the requests delivered so far.
func (s *Server) Requests() []action.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]action.Request(nil), s.requests...)
}

func (s *Server) deliver(r action.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	hook := s.onRequest
	s.mu.Unlock()
	s.log.Info("action delivered", "request", r.String())
	if hook != nil {
		hook(r)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK\n"))
	})
	r.Post("/activate", s.activate)
	r.Route("/tree", func(r chi.Router) {
		r.Get("/", s.getTree)
		r.Put("/", s.putTree)
	})
	r.Route("/nodes/{id}", func(r chi.Router) {
		r.Get("/", s.getNode)
		r.Post("/actions/{action}", s.doAction)
	})
	r.Get("/requests", s.getRequests)
	r.Get("/events", s.getEvents)
	r.Get("/render", s.render)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("inspector listening", "addr", addr)
	return srv.ListenAndServe()
}
