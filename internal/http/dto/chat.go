package dto

import (
	"github.com/switchboardhq/gateway/internal/model"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Model   string `json:"model" binding:"required,oneof=auto gpt claude llama"`
}

type ChatResponse struct {
	ID          int64                `json:"id,string"`
	Content     string               `json:"content"`
	Model       string               `json:"model"`
	Automations []AutomationResponse `json:"automations"`
}

type AutomationResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

func ToChatResponse(id int64, result *model.ChatResult, actions []model.AutomationAction) *ChatResponse {
	automations := make([]AutomationResponse, 0, len(actions))
	for _, a := range actions {
		automations = append(automations, AutomationResponse{
			Type:    string(a.Type),
			Message: a.Message,
			Icon:    a.Icon,
		})
	}

	return &ChatResponse{
		ID:          id,
		Content:     result.Content,
		Model:       string(result.Model),
		Automations: automations,
	}
}

type ModelResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToModelResponses(infos []model.ModelInfo) []ModelResponse {
	out := make([]ModelResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, ModelResponse{ID: string(info.ID), Name: info.Name})
	}
	return out
}
