package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	origins := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if slices.Contains(origins, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	v1 := r.Group("/api/v1")

	protected := v1.Group("/")
	protected.Use(app.Handler.RequireAuth())
	{
		protected.POST("/interviews/generate", app.Handler.GenerateInterview)
		protected.GET("/interviews/generate", app.Handler.CheckAuth)
		protected.GET("/interviews/latest", app.Handler.LatestInterviews)
		protected.GET("/interviews/:id", app.Handler.GetInterview)
		protected.GET("/interviews", app.Handler.ListInterviews)
	}

	return r
}
