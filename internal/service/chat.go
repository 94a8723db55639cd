package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/switchboardhq/gateway/common/llm"
	"github.com/switchboardhq/gateway/common/logger"
	"github.com/switchboardhq/gateway/internal/model"
)

// ErrBackendUnavailable wraps every upstream failure kind (non-2xx status,
// transport failure, malformed payload) into the single failure the HTTP
// boundary maps to a server-error status.
var ErrBackendUnavailable = errors.New("AI backend unavailable")

// ErrModelNotConfigured is an internal configuration fault: a logical model
// passed validation but has no provider mapping. Distinct from client
// validation errors and never silently defaulted.
var ErrModelNotConfigured = errors.New("model not configured")

// ErrInvalidModel guards against callers bypassing request validation.
var ErrInvalidModel = errors.New("invalid model")

const (
	// Static generation policy; not caller-configurable.
	maxCompletionTokens = 1000
	temperature         = 0.7

	// Substituted whenever the upstream reply carries no completion text.
	placeholderContent = "No response generated"

	degradedContent = "The AI service is currently unavailable. Please try again later."
)

// providerModels maps logical identifiers to provider-qualified upstream
// strings. Static configuration data, read-only for the process lifetime.
var providerModels = map[model.ModelID]string{
	model.ModelGPT:    "openai/gpt-4o",
	model.ModelClaude: "anthropic/claude-3.5-sonnet",
	model.ModelLlama:  "meta-llama/llama-3.1-70b-instruct",
}

// concreteModels is the fixed candidate set for auto selection.
var concreteModels = []model.ModelID{model.ModelGPT, model.ModelClaude, model.ModelLlama}

// ChatService routes one message to an upstream model and normalizes the
// outcome. The operational and degraded variants expose the same operation,
// so callers never branch on which one they hold.
type ChatService interface {
	Chat(ctx context.Context, message string, m model.ModelID) (*model.ChatResult, error)
	// Ready reports whether the upstream credential is configured.
	Ready() bool
}

// SupportedModels lists the caller-selectable models, auto first.
func SupportedModels() []model.ModelInfo {
	return []model.ModelInfo{
		{ID: model.ModelAuto, Name: "Auto (random)"},
		{ID: model.ModelGPT, Name: "GPT-4o"},
		{ID: model.ModelClaude, Name: "Claude 3.5 Sonnet"},
		{ID: model.ModelLlama, Name: "Llama 3.1 70B"},
	}
}

type chatService struct {
	llm  llm.Client
	pick func(n int) int
}

// NewChatService creates the operational chat service over the given upstream
// client.
func NewChatService(client llm.Client) ChatService {
	return &chatService{
		llm:  client,
		pick: rand.IntN,
	}
}

func (s *chatService) Chat(ctx context.Context, message string, m model.ModelID) (*model.ChatResult, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, m)
	}

	resolved := m
	if resolved == model.ModelAuto {
		resolved = concreteModels[s.pick(len(concreteModels))]
	}

	provider, ok := providerModels[resolved]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotConfigured, resolved)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Model:     logger.Ptr(string(resolved)),
		Component: "gateway.service.chat",
	})
	slog.DebugContext(ctx, "routing message upstream",
		"provider_model", provider,
		"message", logger.Truncate(message, 120))

	resp, err := s.llm.Complete(ctx, llm.Request{
		Model:       provider,
		UserMessage: message,
		MaxTokens:   maxCompletionTokens,
		Temperature: temperature,
	})
	if err != nil {
		slog.WarnContext(ctx, "upstream completion failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	content := resp.Content
	if content == "" {
		content = placeholderContent
	}

	return &model.ChatResult{
		Content: content,
		Model:   resolved,
	}, nil
}

func (s *chatService) Ready() bool {
	return true
}

type degradedChatService struct {
	reason string
}

// NewDegradedChatService creates the stand-in selected at startup when the
// upstream credential is absent. Every chat resolves to fixed unavailable
// content with the offline sentinel model, keeping the rest of the gateway
// functioning in a visibly degraded mode.
func NewDegradedChatService(reason string) ChatService {
	return &degradedChatService{reason: reason}
}

func (s *degradedChatService) Chat(ctx context.Context, message string, m model.ModelID) (*model.ChatResult, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, m)
	}

	slog.DebugContext(ctx, "degraded chat response", "reason", s.reason)
	return &model.ChatResult{
		Content: degradedContent,
		Model:   model.ModelOffline,
	}, nil
}

func (s *degradedChatService) Ready() bool {
	return false
}
