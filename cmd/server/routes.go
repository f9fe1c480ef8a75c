package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"paletto-cards.backend/internal/interfaces/http/handlers"
	"paletto-cards.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	memberHandler *handlers.MemberHandler
	authHandler   *handlers.AuthHandler
	exportHandler *handlers.ExportHandler
	sessionAuth   gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth", d.authHandler.Login)
		api.PUT("/auth", d.authHandler.ChangePassword)

		members := api.Group("/members")
		{
			// Public reads
			members.GET("", d.memberHandler.ListMembers)
			members.GET("/:id", d.memberHandler.GetMember)
			members.GET("/:id/vcard", d.exportHandler.ExportVCard)

			// Admin writes (session-gated)
			members.POST("", d.sessionAuth, middleware.IdempotencyMiddleware(), d.memberHandler.CreateMember)
			members.PUT("/:id", d.sessionAuth, d.memberHandler.UpdateMember)
			members.DELETE("/:id", d.sessionAuth, d.memberHandler.DeleteMember)
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// applyCORSMiddleware reflects the request origin so the admin frontend
// on another port can call the API. Auth rides in the Authorization
// header, never in cookies, so credentialed CORS is deliberately not
// allowed.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "paletto-cards-backend",
			"version": "0.2.0",
		})
	})
}
