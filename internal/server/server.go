package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/halcyonworks/siteapi/internal/api/handlers"
	"github.com/halcyonworks/siteapi/internal/config"
	"github.com/halcyonworks/siteapi/internal/ratelimit"
	"github.com/halcyonworks/siteapi/internal/server/routes"
	"github.com/halcyonworks/siteapi/internal/service"

	"github.com/gin-gonic/gin"
)

// Contact submission policies. Normal applies to every submission; strict is
// consulted additionally for submissions the abuse heuristic flags.
var (
	normalPolicy = ratelimit.Config{TokensPerInterval: 5, Interval: time.Hour}
	strictPolicy = ratelimit.Config{TokensPerInterval: 2, Interval: time.Hour}
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// New wires the full request pipeline: middleware stack, limiters, abuse
// heuristic and the email services, all explicitly constructed and injected.
func New(cfg *config.Config) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	mailer := service.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail)
	emailService := service.NewEmailService(mailer, cfg.NotificationEmail)
	spamService := service.NewSpamService()

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(
			emailService,
			spamService,
			ratelimit.New(normalPolicy),
			ratelimit.New(strictPolicy),
			cfg.IsDevelopment(),
		),
		Health: handlers.NewHealthHandler(cfg.Environment),
	}

	routes.SetupGlobalMiddleware(router, cfg)
	routes.Setup(router, h)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Router exposes the engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
