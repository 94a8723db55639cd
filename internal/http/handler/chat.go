package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/switchboardhq/gateway/common/id"
	"github.com/switchboardhq/gateway/common/logger"
	"github.com/switchboardhq/gateway/internal/http/dto"
	"github.com/switchboardhq/gateway/internal/model"
	"github.com/switchboardhq/gateway/internal/service"
)

type ChatHandler struct {
	chat service.ChatService
}

func NewChatHandler(chat service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Submit routes one message to the selected model and returns the response
// envelope. Validation failures never reach the upstream; automation
// detection runs only after a successful completion, on the original message.
func (h *ChatHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "message and a valid model (auto, gpt, claude, llama) are required"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		return
	}

	requestID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(requestID)})

	result, err := h.chat.Chat(ctx, req.Message, model.ModelID(req.Model))
	if err != nil {
		if errors.Is(err, service.ErrBackendUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "chat routing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	automations := service.DetectAutomations(req.Message)

	slog.InfoContext(ctx, "chat completed",
		"model", result.Model,
		"automations", len(automations))

	c.JSON(http.StatusOK, dto.ToChatResponse(requestID, result, automations))
}

// ListModels returns the selectable logical models for client pickers.
func (h *ChatHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": dto.ToModelResponses(service.SupportedModels())})
}
