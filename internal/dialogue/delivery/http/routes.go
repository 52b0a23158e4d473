package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/webhook", h.Verify)
	r.POST("/webhook", h.Receive)
}
