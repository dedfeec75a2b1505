package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"clubs.backend/internal/interfaces/http/handlers"
	"clubs.backend/internal/metrics"
)

type routeDeps struct {
	clubHandler     *handlers.ClubHandler
	leaderHandler   *handlers.LeaderHandler
	userHandler     *handlers.UserHandler
	authMiddleware  gin.HandlerFunc
	adminMiddleware gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Club routes (public read, admin write)
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", d.clubHandler.List)
			clubs.GET("/by-id/:id", d.clubHandler.GetByID)
			clubs.GET("/by-slug/:slug", d.clubHandler.GetBySlug)
			clubs.GET("/by-id/:id/logo", d.clubHandler.GetLogo)
		}
		clubsAdmin := v1.Group("/clubs")
		clubsAdmin.Use(d.authMiddleware, d.adminMiddleware)
		{
			clubsAdmin.POST("", d.clubHandler.Create)
			clubsAdmin.POST("/by-id/:id", d.clubHandler.UpdateByID)
			clubsAdmin.POST("/by-slug/:slug", d.clubHandler.UpdateBySlug)
			clubsAdmin.DELETE("/by-id/:id", d.clubHandler.Delete)
			clubsAdmin.POST("/by-id/:id/logo", d.clubHandler.SetLogo)
		}

		// Leader routes (public)
		leaders := v1.Group("/leaders")
		{
			leaders.GET("", d.leaderHandler.List)
			leaders.GET("/by-club-id/:id", d.leaderHandler.GetByClubID)
			leaders.GET("/by-club-slug/:slug", d.leaderHandler.GetByClubSlug)
		}

		// User routes (authenticated)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/me", d.userHandler.GetMe)
			users.POST("/change-role", d.userHandler.ChangeRole)
		}
	}
}
