package router

import (
	"github.com/gin-gonic/gin"

	"github.com/switchboardhq/gateway/internal/http/handler"
)

func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler) {
	rg.POST("/chat", h.Submit)
	rg.GET("/models", h.ListModels)
}
