// Package routes registers the API route table.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/controllers"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
)

// SetupRoutes wires every endpoint under /api/v1 plus the operational
// endpoints.
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
		auth.POST("/logout", authMW.OptionalAuth(), ctrls.Auth.Logout)
		auth.GET("/check", authMW.OptionalAuth(), ctrls.Auth.Check)
		auth.GET("/csrf", ctrls.Auth.CSRFToken)
	}

	officers := v1.Group("/officers", authMW.RequireAuth())
	{
		officers.GET("", ctrls.Officers.List)
		officers.GET("/pending_activation", ctrls.Officers.PendingActivation)
		officers.GET("/:id", ctrls.Officers.Get)
		officers.PUT("/:id", ctrls.Officers.Update)
		officers.DELETE("/:id", ctrls.Officers.Delete)
		officers.PATCH("/:id/activate", ctrls.Officers.Activate)
	}

	criminals := v1.Group("/criminals", authMW.OptionalAuth())
	{
		criminals.GET("", ctrls.Criminals.List)
		criminals.POST("", ctrls.Criminals.Create)
		criminals.GET("/stats", ctrls.Criminals.Stats)
		criminals.GET("/search", ctrls.Criminals.Search)
		criminals.POST("/search", ctrls.Criminals.SearchPost)
		criminals.GET("/:id", ctrls.Criminals.Get)
		criminals.PUT("/:id", ctrls.Criminals.Update)
		criminals.DELETE("/:id", ctrls.Criminals.Delete)
		criminals.PATCH("/:id/update_status", ctrls.Criminals.UpdateStatus)
		criminals.POST("/:id/image", ctrls.Criminals.UploadImage)
	}

	crimes := v1.Group("/crimes", authMW.OptionalAuth())
	{
		crimes.GET("", ctrls.Crimes.List)
		crimes.POST("", ctrls.Crimes.Create)
		crimes.GET("/:id", ctrls.Crimes.Get)
		crimes.PUT("/:id", ctrls.Crimes.Update)
		crimes.DELETE("/:id", ctrls.Crimes.Delete)
	}

	evidence := v1.Group("/criminal-evidence", authMW.OptionalAuth())
	{
		evidence.GET("", ctrls.Evidence.List)
		evidence.POST("", ctrls.Evidence.Create)
		evidence.GET("/:id", ctrls.Evidence.Get)
		evidence.PUT("/:id", ctrls.Evidence.Update)
		evidence.DELETE("/:id", ctrls.Evidence.Delete)
	}

	documents := v1.Group("/criminal-documents", authMW.OptionalAuth())
	{
		documents.GET("", ctrls.Documents.List)
		documents.POST("", ctrls.Documents.Create)
		documents.GET("/:id", ctrls.Documents.Get)
		documents.PUT("/:id", ctrls.Documents.Update)
		documents.DELETE("/:id", ctrls.Documents.Delete)
	}
}
