// Package apihttp exposes the service's JSON/multipart HTTP surface.
package apihttp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chartwhisperer/internal/analysis"
	"chartwhisperer/internal/journal"
)

// Server wraps the gin engine and its lifecycle.
type Server struct {
	addr   string
	router *gin.Engine
}

// ServerConfig describes the HTTP server dependencies.
type ServerConfig struct {
	Addr     string
	Analysis *analysis.Service
	Journal  *journal.Service
	Logger   *zerolog.Logger
}

// NewServer builds the HTTP server and registers all routes.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Analysis == nil || cfg.Journal == nil {
		return nil, errors.New("http server requires analysis and journal services")
	}
	if cfg.Logger == nil {
		return nil, errors.New("http server requires a logger")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Logger), corsAllowAll())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := NewRouter(cfg.Analysis, cfg.Journal, cfg.Logger)
	api.Register(router)

	return &Server{addr: cfg.Addr, router: router}, nil
}

// Handler exposes the underlying handler, for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the HTTP server, blocking until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
