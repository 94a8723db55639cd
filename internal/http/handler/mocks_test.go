package handler_test

import (
	"context"

	"github.com/switchboardhq/gateway/internal/model"
)

type mockChatService struct {
	chatFn func(ctx context.Context, message string, m model.ModelID) (*model.ChatResult, error)
	ready  bool
	calls  int
}

func (m *mockChatService) Chat(ctx context.Context, message string, mid model.ModelID) (*model.ChatResult, error) {
	m.calls++
	if m.chatFn != nil {
		return m.chatFn(ctx, message, mid)
	}
	return &model.ChatResult{Content: "ok", Model: model.ModelGPT}, nil
}

func (m *mockChatService) Ready() bool {
	return m.ready
}
