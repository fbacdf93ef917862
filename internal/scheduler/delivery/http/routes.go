package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The static
// /parse, /conflicts and /slots paths must be registered before the /:id
// wildcard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/conflicts", h.Conflicts)
		tasks.GET("/slots", h.Slots)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
