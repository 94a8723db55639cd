package router

import (
	"github.com/gin-gonic/gin"

	"github.com/switchboardhq/gateway/internal/http/handler"
	"github.com/switchboardhq/gateway/internal/service"
)

func SetupRoutes(router *gin.Engine, chat service.ChatService) {
	healthHandler := handler.NewHealthHandler(chat)
	router.GET("/health", healthHandler.Check)

	v1 := router.Group("/api/v1")
	{
		chatHandler := handler.NewChatHandler(chat)
		ChatRouter(v1, chatHandler)
	}
}
