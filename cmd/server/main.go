package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"farida_law_site_go/config"
	"farida_law_site_go/handlers"
	"farida_law_site_go/logger"
	"farida_law_site_go/middleware"
	"farida_law_site_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Initialize(logger.Config{
		Level:       cfg.LogLevel,
		LogDir:      cfg.LogDir,
		Environment: cfg.Environment,
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Site content: built-in defaults, optionally overridden by SITE_FILE
	site, err := services.LoadSite(cfg.SiteFile)
	if err != nil {
		logger.Fatal("failed to load site content", zap.Error(err))
	}
	if cfg.SiteFile == "" && cfg.AppURL != "" {
		site.URL = cfg.AppURL
	}

	services.InitializeChallenges(cfg.ChallengeTTL)
	// An in-flight mark never outlives the delivery timeout by much
	services.InitializeInflight(cfg.DeliveryTimeout + 5*time.Second)
	middleware.InitAssetVersions(cfg.StaticDir)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Pre-routing: one canonical address per page
	e.Pre(middleware.PageTrailingSlash())

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))
	// Registered globally so preflight requests reach it before routing fails
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	// Make config and site content available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			c.Set("site", site)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Operational
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Pages
	e.GET("/", handlers.HomeHandler)
	e.GET("/about/", handlers.AboutHandler)
	e.GET("/practice-areas/", handlers.PracticeAreasHandler)
	e.GET("/reviews/", handlers.ReviewsHandler)

	// Lead forms
	formLimit := middleware.PublicFormRateLimiter.Middleware()
	e.GET("/consultation-request/", handlers.ConsultationHandler)
	e.POST("/consultation-request/", handlers.ConsultationPostHandler, formLimit)
	e.GET("/client-intake/", handlers.IntakeHandler)
	e.POST("/client-intake/", handlers.IntakePostHandler, formLimit)

	// Lead relay: the receiving end a form endpoint may point at
	api := e.Group("/api")
	api.Use(middleware.APIRateLimiter.Middleware())
	{
		api.POST("/leads", handlers.LeadRelayHandler)
	}

	e.Server.ReadHeaderTimeout = 15 * time.Second
	e.Server.ReadTimeout = 30 * time.Second
	// Form posts wait for one outbound delivery
	e.Server.WriteTimeout = cfg.DeliveryTimeout + 15*time.Second
	e.Server.IdleTimeout = 60 * time.Second

	// Start server
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.ServerPort),
			zap.String("environment", cfg.Environment),
			zap.Bool("contact_endpoint", cfg.ContactEndpoint != ""),
			zap.Bool("intake_endpoint", cfg.IntakeEndpoint != ""),
			zap.Bool("lead_relay", cfg.LeadRelayEnabled),
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DeliveryTimeout+5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
