// Package router assembles the gin engine: middleware chain, public routes and
// the authenticated API.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"approvals/internal/config"
	"approvals/internal/handlers"
	"approvals/internal/health"
	"approvals/internal/identity"
	"approvals/internal/metrics"
	"approvals/internal/middleware"
	"approvals/internal/services"

	_ "approvals/internal/docs" // Import swagger docs
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Config         *config.Config
	Verifier       identity.Verifier
	RequestService services.RequestServicer
	AuditService   services.AuditServicer
	Health         *health.Registry
}

// New builds the HTTP engine.
func New(deps Deps) *gin.Engine {
	requestHandler := handlers.NewRequestHandler(deps.RequestService)
	adminHandler := handlers.NewAdminHandler(deps.RequestService)
	logHandler := handlers.NewLogHandler(deps.AuditService)
	authHandler := handlers.NewAuthHandler()

	registry := deps.Health
	if registry == nil {
		registry = health.NewRegistry()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS(deps.Config))
	router.Use(middleware.ErrorHandler())

	// Public routes
	router.GET("/health", health.Handler(registry, deps.Config.Environment))
	router.GET("/metrics", metrics.Handler(deps.Config.MetricsAPIKey))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))

	protected.GET("/auth/me", authHandler.Me)

	requests := protected.Group("/requests")
	requests.POST("", requestHandler.CreateRequest)
	requests.GET("", requestHandler.ListRequests)
	requests.GET("/:id", requestHandler.GetRequest)

	protected.GET("/logs", logHandler.ListLogs)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/requests", adminHandler.ListOpenRequests)
	admin.PUT("/requests/:id/approve", adminHandler.ApproveRequest)
	admin.PUT("/requests/:id/reject", adminHandler.RejectRequest)

	return router
}
