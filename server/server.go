// Package server exposes resolved settings over HTTP and streams theme store
// changes to WebSocket clients.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	uxsettings "github.com/goliatone/go-ux-settings"
)

const defaultTracerName = "uxsettings"

// Config captures the collaborators of a Server.
type Config struct {
	Resolver    *uxsettings.Resolver
	Input       uxsettings.Input
	Logger      *slog.Logger
	Metrics     *Metrics
	TracerName  string
	CheckOrigin func(*http.Request) bool
}

// Option mutates a Config during construction
type Option func(*Config) error

// WithResolver sets the resolver used for every request.
func WithResolver(r *uxsettings.Resolver) Option {
	return func(c *Config) error {
		c.Resolver = r
		return nil
	}
}

// WithInput sets the input published on the server's root scope.
func WithInput(in uxsettings.Input) Option {
	return func(c *Config) error {
		c.Input = in
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Config) error {
		c.Metrics = m
		return nil
	}
}

// WithTracerName names the tracer taken from the global OpenTelemetry provider.
func WithTracerName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return errors.New("server: tracer name must not be empty")
		}
		c.TracerName = name
		return nil
	}
}

// WithCheckOrigin overrides the WebSocket origin check. By default only
// same-origin upgrades are accepted.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(c *Config) error {
		c.CheckOrigin = fn
		return nil
	}
}

// Server serves one published settings tree.
type Server struct {
	resolver *uxsettings.Resolver
	root     *uxsettings.Scope
	settings *uxsettings.Settings
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	router   chi.Router

	closeOnce sync.Once
	closing   chan struct{}
}

// New builds a Server and publishes the configured input on its root scope.
func New(opts ...Option) (*Server, error) {
	cfg := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = uxsettings.DefaultResolver()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics("", nil)
	}

	root := uxsettings.NewRootScope(cfg.Resolver)
	s := &Server{
		resolver: cfg.Resolver,
		root:     root,
		settings: root.Publish(cfg.Input),
		logger:   cfg.Logger.With("component", "uxsettings.server"),
		metrics:  cfg.Metrics,
		tracer:   otel.Tracer(cfg.TracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		closing: make(chan struct{}),
	}
	s.router = s.routes()

	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/settings", s.handleSettings)
		r.Post("/resolve", s.handleResolve)
		r.Get("/ordinal/{n}", s.handleOrdinal)
		r.Get("/number/{value}", s.handleNumber)

		r.Route("/theme", func(r chi.Router) {
			r.Get("/", s.handleThemeState)
			r.Put("/", s.handleSetTheme)
			r.Put("/system", s.handleSystemDark)
			r.Get("/ws", s.handleThemeFeed)
		})
	})

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Settings returns the settings published on the root scope.
func (s *Server) Settings() *uxsettings.Settings {
	return s.root.Settings()
}

// Scope returns the root scope requests resolve under.
func (s *Server) Scope() *uxsettings.Scope {
	return s.root
}

// Close ends every open theme feed. It is safe to call more than once.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		close(s.closing)
		s.logger.Info("theme feeds closed")
	})
	return nil
}

