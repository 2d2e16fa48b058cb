package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-gateway/internal/api/handler"
	"github.com/localspot/directory-gateway/internal/api/middleware"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

// Deps carries everything the router wires together. Redis is nil when the
// file credential store is in use.
type Deps struct {
	Sessions  ports.SessionService
	Directory ports.DirectoryAPI
	Redis     *redis.Client
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory_gateway"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	businessHandler := handler.NewBusinessHandler(deps.Directory)
	claimHandler := handler.NewClaimHandler(deps.Directory, deps.Logger)
	requireSession := middleware.RequireSession(deps.Sessions)
	requireAdmin := middleware.RequireAdmin(deps.Sessions)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "directory-gateway"})
	})
	e.GET("/login", authHandler.LoginView)
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Protected routes ---
	businesses := e.Group("/businesses", requireSession)
	businesses.GET("", businessHandler.List)
	businesses.GET("/search", businessHandler.List)
	businesses.GET("/top-rated", businessHandler.TopRated)
	businesses.GET("/:id", businessHandler.Get)
	businesses.POST("", businessHandler.Create)
	businesses.GET("/:id/reviews", businessHandler.ListReviews)
	businesses.POST("/:id/reviews", businessHandler.AddReview)
	businesses.POST("/:id/claim", claimHandler.Submit)

	// --- Admin routes ---
	admin := e.Group("/admin", requireAdmin)
	admin.GET("/claims", claimHandler.List)
	admin.PUT("/claims/:id", claimHandler.Update)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Sessions, deps.Redis)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
