package http

import (
	"github.com/gin-gonic/gin"

	"daynix/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/board", mw.RateLimit(), h.Board)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.GET("", mw.RateLimit(), h.List)
		tasks.PUT("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
		tasks.POST("/:id/complete", mw.RateLimit(), h.Complete)
		tasks.POST("/:id/lock", mw.RateLimit(), h.ToggleLock)
		tasks.POST("/conflicts", mw.RateLimit(), h.Conflicts)
		tasks.POST("/automove", mw.RateLimit(), h.AutoMove)
	}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", mw.RateLimit(), h.GetPreferences)
		prefs.PUT("", mw.RateLimit(), h.SavePreferences)
	}

	backup := rg.Group("/backup")
	{
		backup.POST("/export", mw.RateLimit(), h.ExportBackup)
		backup.POST("/import", mw.RateLimit(), h.ImportBackup)
	}
}
