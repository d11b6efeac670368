package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/charta/internal/logger"
)

// Option configures a Server.
type Option func(*Server)

// WithRateLimit sets the request rate limit.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(s *Server) {
		s.limiter = NewRateLimiter(cfg)
	}
}

// WithAllowedOrigins restricts CORS to the given origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// Server is the REST API for charta.
type Server struct {
	ports   *Ports
	engine  *gin.Engine
	limiter *RateLimiter
	origins []string
}

// NewServer creates the API server and registers its routes.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:   ports,
		limiter: NewRateLimiter(DefaultRateLimit),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", RequestIDHeader},
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", s.health)

	api := r.Group("/api", rateLimit(s.limiter))
	{
		templates := api.Group("/templates")
		{
			templates.GET("", s.listTemplates)
			templates.GET("/:name", s.getTemplate)
		}

		api.GET("/routes/suggest", s.suggestTemplates)
		api.GET("/vessel-classes", s.listVesselClasses)
		api.GET("/clauses", s.listClauses)
		api.GET("/ports", s.listPorts)

		charters := api.Group("/charters")
		{
			charters.POST("/generate", s.generateCharter)
			charters.GET("", s.listRecords)
			charters.POST("", s.saveRecord)
		}

		api.GET("/rates/estimate", s.estimateRate)
	}
	return r
}

// Run serves the API on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.For("http").Warn("shutdown: %v", err)
		}
	}()

	logger.For("http").Info("listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
