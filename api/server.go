package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/podcast-gateway/api/types"
	"github.com/killallgit/podcast-gateway/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	listener   net.Listener

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(cfg config.ServerConfig) *Server {
	engine := gin.New()

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:           cfg.Address(),
			Handler:        engine,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.ReadTimeout,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	if s.dependencies.Config == nil {
		s.dependencies.Config = config.Default()
	}
	if s.dependencies.Logger == nil {
		s.dependencies.Logger = zap.NewNop()
	}

	s.setupMiddleware()

	return RegisterRoutes(s.engine, s.dependencies)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	deps := s.dependencies
	cfg := deps.Config

	s.engine.Use(Recovery(deps.Logger))
	s.engine.Use(RequestID())
	s.engine.Use(Logger(deps.Logger.Named("http")))
	s.engine.Use(Instrument(deps.Metrics))

	if cfg.Security.EnableCORS {
		s.engine.Use(CORS(cfg.Security.CORSOrigins))
	}

	s.engine.Use(RequestSizeLimitWithSize(cfg.Security.MaxRequestBytes))
}

// Listen binds the configured address and returns the bound address
func (s *Server) Listen() (net.Addr, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, err
	}
	s.listener = ln
	return ln.Addr(), nil
}

// Start serves HTTP until Shutdown is called. It binds first if Listen was not called.
func (s *Server) Start() error {
	if s.listener == nil {
		if _, err := s.Listen(); err != nil {
			return err
		}
	}

	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
