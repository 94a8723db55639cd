package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/switchboardhq/gateway/internal/service"
)

type HealthHandler struct {
	chat service.ChatService
}

func NewHealthHandler(chat service.ChatService) *HealthHandler {
	return &HealthHandler{chat: chat}
}

// Check reports liveness and whether the upstream credential is configured.
// Informational only; no side effects.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"backend_configured": h.chat.Ready(),
	})
}
