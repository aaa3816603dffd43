// Package server exposes adjacency analysis over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Faultbox/meshfold/internal/assets"
	"github.com/Faultbox/meshfold/internal/config"
	"github.com/Faultbox/meshfold/internal/logger"
)

// Server is the HTTP front end. Each request gets its own walker, so
// handlers share no mutable state.
type Server struct {
	cfg    config.ServerConfig
	opts   config.AnalysisConfig
	meshes *assets.Manager
	engine *gin.Engine
}

// New builds a Server and its routes from cfg. Every directory in
// mesh.dirs must exist.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:    cfg.Server,
		opts:   cfg.Analysis,
		meshes: assets.NewManager(),
		engine: gin.New(),
	}

	for _, dir := range cfg.Mesh.Dirs {
		if err := s.meshes.AddDir(dir); err != nil {
			return nil, err
		}
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/groups", s.groups)
		v1.GET("/meshes/:name/groups", s.meshGroups)
	}
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutting down")
	s.meshes.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) maxUploadBytes() int64 {
	return int64(s.cfg.MaxUploadMB) << 20
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Named("http").Info(c.Request.Method+" "+c.Request.URL.Path,
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("client", c.ClientIP()),
		)
	}
}
