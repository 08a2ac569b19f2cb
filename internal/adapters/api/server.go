// Package api provides HTTP adapters for the hexagonal architecture
// These adapters expose the session actions and the rendered screens over JSON
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/internal/core/preferences"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// limiterTTL is how long an idle client keeps its token bucket
const limiterTTL = time.Hour

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port      int
	RateLimit float64
	RateBurst int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	session        SessionUseCase
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
}

// SessionUseCase is the session store as seen by the HTTP adapter
type SessionUseCase interface {
	Snapshot() session.Snapshot
	Limits() plan.Limits
	Navigate(view session.ViewName) (session.ViewName, error)

	Login(ctx context.Context, req session.LoginRequest) error
	Register(ctx context.Context, req session.RegisterRequest) (string, error)
	Logout(ctx context.Context)
	RestoreSession(ctx context.Context) error
	UpgradePlan(ctx context.Context, target string) (string, error)

	SearchWeather(ctx context.Context, city string) error
	RefreshHistory(ctx context.Context) error
	HideHistory()

	RequestBasicAdvice(ctx context.Context) (string, error)
	SelectOutfitImages(images []ports.ImageFile) error
	RequestOutfitAdvice(ctx context.Context, city string) (*session.OutfitResult, error)
	RequestTravelAdvice(ctx context.Context, req session.TravelRequest) (string, error)
	RefreshOutfitHistory(ctx context.Context) error

	WizardNext() (preferences.Page, error)
	WizardPrevious() (preferences.Page, error)
	WizardSelect(questionID, option string) (preferences.Page, error)
	SubmitPreferences(ctx context.Context) error
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Session             SessionUseCase
	SystemHealthChecker ports.SystemHealthChecker
	MetricsHandler      http.Handler
	Logger              ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		session:        opts.Session,
		healthChecker:  opts.SystemHealthChecker,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
	}

	server.setupMiddleware()
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Session == nil {
		return errors.NewValidationError("session use case is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupMiddleware() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	s.router.Use(cors.New(corsConfig))

	if s.config.RateLimit <= 0 {
		return
	}
	burst := s.config.RateBurst
	if burst < 1 {
		burst = 1
	}
	s.router.Use(limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Limit(s.config.RateLimit), burst), limiterTTL
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Demasiadas solicitudes. Inténtalo de nuevo en unos segundos."})
	}))
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/session", s.getSession)
		api.GET("/plans", s.getPlans)
		api.POST("/navigate", s.navigate)

		auth := api.Group("/auth")
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
		auth.POST("/logout", s.logout)
		auth.POST("/restore", s.restore)

		api.GET("/weather", s.searchWeather)
		api.POST("/weather", s.searchWeather)
		api.GET("/history", s.refreshHistory)
		api.DELETE("/history", s.hideHistory)

		advice := api.Group("/advice")
		advice.POST("/basic", s.basicAdvice)
		advice.POST("/outfit/images", s.selectOutfitImages)
		advice.POST("/outfit", s.outfitAdvice)
		advice.POST("/travel", s.travelAdvice)
		api.GET("/outfits", s.refreshOutfitHistory)

		api.POST("/plan/upgrade", s.upgradePlan)

		wizard := api.Group("/wizard")
		wizard.POST("/next", s.wizardNext)
		wizard.POST("/previous", s.wizardPrevious)
		wizard.POST("/select", s.wizardSelect)
		wizard.POST("/submit", s.submitPreferences)
	}

	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
