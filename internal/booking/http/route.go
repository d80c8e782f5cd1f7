package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Public Routes ===
	// Customer-facing lookup by booking code; no staff login required.
	group.GET("/code/:code", h.GetByCode)

	// === Authenticated Routes ===
	group.GET("", authMiddleware, h.List)
	group.GET("/:id", authMiddleware, h.Get)
	group.POST("", authMiddleware, h.Create)
	group.PATCH("/:id/payment", authMiddleware, h.UpdatePayment)
	group.DELETE("/:id", authMiddleware, h.Cancel)

	// Slot availability, public for pre-flight display.
	g.GET("/facilities/:id/booked-slots", h.BookedSlots)
	g.GET("/facilities/:id/free-slots", h.FreeSlots)

	// Calendar projection of committed bookings.
	g.GET("/calendar", authMiddleware, h.Calendar)
}
