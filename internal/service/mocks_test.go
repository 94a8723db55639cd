package service_test

import (
	"context"

	"github.com/switchboardhq/gateway/common/llm"
)

type mockLLMClient struct {
	completeFn func(ctx context.Context, req llm.Request) (*llm.Response, error)
	calls      int
	requests   []llm.Request
}

func (m *mockLLMClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	m.calls++
	m.requests = append(m.requests, req)
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return &llm.Response{Content: "ok"}, nil
}
