package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reflection-backend/internal/shared/middleware"
	"reflection-backend/internal/shared/response"
	"reflection-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAuthorDashboardRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// Public, unauthenticated reader routes.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("/register", c.AuthorHandler.Register)
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:slug", c.AuthorHandler.GetBySlug)
		authors.GET("/:slug/content", c.ContentHandler.ListPublished)
		authors.GET("/:slug/content/:contentSlug", c.ContentHandler.GetPublished)
		authors.POST("/:slug/subscribe", c.SubscriberHandler.Subscribe)
		authors.POST("/:slug/unsubscribe", c.SubscriberHandler.Unsubscribe)
	}
}

// Routes for an authenticated author managing their own content.
func setupAuthorDashboardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	dashboard := v1.Group("/author/content")
	dashboard.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		dashboard.POST("", c.ContentHandler.Create)
		dashboard.GET("", c.ContentHandler.ListMine)
		dashboard.POST("/:id/submit", c.ContentHandler.Submit)
		dashboard.POST("/:id/archive", c.ContentHandler.Archive)
		dashboard.POST("/:id/cover", c.ContentHandler.UploadCover)
	}
}

// Admin back-office: authentication, queues and the review operations.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")

	admin.POST("/auth/login", c.AdminHandler.Login)

	authed := admin.Group("")
	authed.Use(middleware.AuthMiddleware(c.Config.JWT.Secret), middleware.AdminMiddleware())
	{
		authed.GET("/auth/me", c.AdminHandler.Me)
		authed.GET("/authors", c.AuthorHandler.AdminList)
		authed.POST("/authors/:id/review", c.ModerationHandler.ReviewAuthor)
		authed.GET("/content/pending", c.ContentHandler.ListPendingReview)
		authed.POST("/content/:id/review", c.ModerationHandler.ReviewContent)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "ok" || cacheStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
