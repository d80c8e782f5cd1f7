package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/facilities")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Admin Routes ===
	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, adminMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
