// Package server serves the landing page over HTTP with gin. The current site
// is held behind an atomic pointer so a content watcher can swap it while
// requests are in flight; every request renders a fresh page.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/orchestrator"
	"github.com/goliatone/go-landing/pkg/palette"
	"github.com/goliatone/go-landing/pkg/render"
	"github.com/goliatone/go-landing/pkg/renderers/vanilla"
)

const shutdownTimeout = 5 * time.Second

type Option func(*Server)

// WithOrchestrator replaces the default orchestrator.
func WithOrchestrator(orch *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if orch != nil {
			s.orch = orch
		}
	}
}

// WithRenderer sets the renderer used when a request has no ?renderer=.
func WithRenderer(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.renderer = name
		}
	}
}

// WithVariant sets the palette variant used when a request has no ?variant=.
func WithVariant(variant string) Option {
	return func(s *Server) {
		s.variant = variant
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logging.OrNop(logger)
	}
}

// WithAllowedOrigins enables CORS for the listed origins. Origins must carry
// a scheme; cors panics on invalid entries when the handler is built.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append(s.origins, origins...)
	}
}

type Server struct {
	site     atomic.Pointer[content.Site]
	orch     *orchestrator.Orchestrator
	renderer string
	variant  string
	origins  []string
	logger   *zap.Logger
}

func New(site content.Site, options ...Option) *Server {
	s := &Server{
		renderer: vanilla.Name,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.orch == nil {
		s.orch = orchestrator.New(orchestrator.WithLogger(s.logger))
	}
	s.SetSite(site)
	return s
}

// SetSite swaps the site served by subsequent requests.
func (s *Server) SetSite(site content.Site) {
	s.site.Store(&site)
}

// Site returns the site currently being served.
func (s *Server) Site() content.Site {
	return *s.site.Load()
}

// Reload reads path and swaps the served site. On error the previous site
// stays in place.
func (s *Server) Reload(path string) error {
	site, err := content.LoadFile(path)
	if err != nil {
		s.logger.Warn("content reload failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("server: reload: %w", err)
	}
	s.SetSite(site)
	s.logger.Info("content reloaded", zap.String("path", path))
	return nil
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	if len(s.origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.origins,
			AllowMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	r.GET("/", s.page)
	r.GET("/healthz", s.health)
	r.StaticFS(palette.AssetPrefix, http.FS(vanilla.AssetsFS()))
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	}
}

func (s *Server) page(c *gin.Context) {
	name := c.DefaultQuery("renderer", s.renderer)
	renderer, err := s.orch.Registry().Get(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := s.Site()
	out, err := s.orch.Generate(c.Request.Context(), orchestrator.Request{
		Site:     &site,
		Renderer: renderer.Name(),
		Variant:  c.DefaultQuery("variant", s.variant),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, render.ErrRendererNotFound) || errors.Is(err, palette.ErrThemeNotFound) {
			status = http.StatusBadRequest
		}
		s.logger.Error("render page", zap.String("renderer", name), zap.Error(err))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, renderer.ContentType(), out)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
