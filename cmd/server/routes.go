package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	projectHandler     *handlers.ProjectHandler
	assessmentHandler  *handlers.AssessmentHandler
	marketplaceHandler *handlers.MarketplaceHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.DELETE("/me", d.authMiddleware, d.authHandler.DeleteAccount)
		}

		// Project routes (protected)
		projects := v1.Group("/projects")
		projects.Use(d.authMiddleware)
		{
			projects.POST("", d.projectHandler.Register)
			projects.GET("", d.projectHandler.List)
			projects.GET("/:id", d.projectHandler.Get)
			projects.DELETE("/:id", d.projectHandler.Delete)
			projects.PATCH("/:id/status", d.projectHandler.AdvanceStatus)

			projects.POST("/:id/assessments", d.assessmentHandler.Request)
			projects.GET("/:id/assessments", d.assessmentHandler.List)
			projects.GET("/:id/credits", d.assessmentHandler.ListProjectCredits)
		}

		// Assessment routes (protected)
		assessments := v1.Group("/assessments")
		assessments.Use(d.authMiddleware)
		{
			assessments.POST("/:id/approve", d.assessmentHandler.Review)
			assessments.POST("/:id/credits", d.assessmentHandler.IssueCredits)
		}

		// Marketplace routes (public listing, protected trading)
		marketplace := v1.Group("/marketplace")
		{
			marketplace.GET("/credits", d.marketplaceHandler.ListCredits)
			marketplace.GET("/credits/:id", d.marketplaceHandler.GetCredit)
			marketplace.POST("/credits/:id/purchase", d.authMiddleware, d.marketplaceHandler.Purchase)
			marketplace.GET("/transactions", d.authMiddleware, d.marketplaceHandler.Transactions)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "greenconnect",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
