// Package httpapi exposes the server's HTTP/JSON API over a Gin engine:
// public auth and proxy endpoints plus token-gated saved-article routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newssense/internal/logging"
	"newssense/internal/server/config"
	"newssense/internal/server/news"
	"newssense/internal/server/sentiment"
	"newssense/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	articles  *services.ArticleService
	news      *news.Service
	sentiment sentiment.Provider
	jwtSecret []byte
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, as *services.ArticleService, ns *news.Service, sp sentiment.Provider) *Server {
	return &Server{
		address:   cfg.Address,
		logger:    l.With("module", "http_server"),
		users:     us,
		articles:  as,
		news:      ns,
		sentiment: sp,
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// Router constructs the Gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/signup", s.handleSignup)
	api.POST("/verify-email", s.handleVerifyEmail)
	api.POST("/login", s.handleLogin)
	api.GET("/news", s.handleNews)
	api.POST("/analyze", s.handleAnalyze)

	protected := api.Group("")
	protected.Use(s.requireAuth())
	protected.POST("/save-news", s.handleSaveNews)
	protected.GET("/saved-news", s.handleSavedNews)
	protected.DELETE("/delete-news/:id", s.handleDeleteNews)

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
