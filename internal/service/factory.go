package service

import (
	"log/slog"

	"github.com/switchboardhq/gateway/common/llm"
	"github.com/switchboardhq/gateway/core/config"
)

// NewChatServiceFromConfig performs the capability check once at startup:
// with a credential present it wires the operational service over the
// OpenRouter client, otherwise it falls back to the degraded stand-in so the
// gateway keeps serving instead of crashing.
func NewChatServiceFromConfig(cfg config.OpenRouterConfig) ChatService {
	if !cfg.Enabled() {
		slog.Warn("OPENROUTER_API_KEY not set, chat service running degraded")
		return NewDegradedChatService("missing upstream credential")
	}

	client, err := llm.New(llm.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		SiteURL: cfg.SiteURL,
		AppName: cfg.AppName,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		slog.Warn("upstream client construction failed, chat service running degraded", "error", err)
		return NewDegradedChatService(err.Error())
	}

	return NewChatService(client)
}
