package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client issues single-turn chat completions against an OpenRouter-compatible
// upstream. Implementations make exactly one upstream attempt per call; retry
// policy belongs to the caller.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes one completion call. Model is the provider-qualified
// string (e.g. "openai/gpt-4o"), not a logical gateway identifier.
type Request struct {
	Model       string
	UserMessage string
	MaxTokens   int
	Temperature float64
}

type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// Config holds upstream client configuration. SiteURL and AppName become the
// HTTP-Referer and X-Title attribution headers OpenRouter expects on every
// request; they are set once at construction, not per call.
type Config struct {
	APIKey  string
	BaseURL string
	SiteURL string
	AppName string
	Timeout time.Duration
}

type client struct {
	openai  openai.Client
	timeout time.Duration
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// One upstream attempt per gateway request; the SDK default of two
		// retries would hide transient provider failures from the caller.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.AppName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.AppName))
	}

	return &client{
		openai:  openai.NewClient(opts...),
		timeout: cfg.Timeout,
	}, nil
}

func (c *client) Complete(ctx context.Context, req Request) (*Response, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.UserMessage),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	params.Temperature = openai.Float(req.Temperature)

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("upstream chat completion: %w", err)
	}

	slog.DebugContext(ctx, "completion finished",
		"model", req.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	// An upstream reply with no choices or empty text is not an error here;
	// the caller substitutes its placeholder content.
	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return &Response{
		Content:          content,
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
	}, nil
}
