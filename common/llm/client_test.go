package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/switchboardhq/gateway/common/llm"
)

type capturedRequest struct {
	Authorization string
	Referer       string
	Title         string
	ContentType   string
	Body          map[string]any
}

func completionJSON(content string) string {
	return `{
		"id": "gen-123",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ` + mustJSON(content) + `}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 7, "completion_tokens": 11, "total_tokens": 18}
	}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		captured *capturedRequest
		status   int
		payload  string
	)

	BeforeEach(func() {
		captured = &capturedRequest{}
		status = http.StatusOK
		payload = completionJSON("Hello from upstream")

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured.Authorization = r.Header.Get("Authorization")
			captured.Referer = r.Header.Get("HTTP-Referer")
			captured.Title = r.Header.Get("X-Title")
			captured.ContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&captured.Body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(payload))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newClient := func() llm.Client {
		c, err := llm.New(llm.Config{
			APIKey:  "sk-or-test",
			BaseURL: server.URL,
			SiteURL: "https://switchboard.dev",
			AppName: "Switchboard",
		})
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	It("requires an API key at construction", func() {
		_, err := llm.New(llm.Config{})
		Expect(err).To(MatchError(ContainSubstring("API key")))
	})

	It("returns the first choice content on success", func() {
		resp, err := newClient().Complete(context.Background(), llm.Request{
			Model:       "openai/gpt-4o",
			UserMessage: "hi",
			MaxTokens:   1000,
			Temperature: 0.7,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Content).To(Equal("Hello from upstream"))
		Expect(resp.PromptTokens).To(Equal(7))
		Expect(resp.CompletionTokens).To(Equal(11))
	})

	It("sends bearer credential, content type and attribution headers", func() {
		_, err := newClient().Complete(context.Background(), llm.Request{
			Model:       "openai/gpt-4o",
			UserMessage: "hi",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(captured.Authorization).To(Equal("Bearer sk-or-test"))
		Expect(captured.Referer).To(Equal("https://switchboard.dev"))
		Expect(captured.Title).To(Equal("Switchboard"))
		Expect(captured.ContentType).To(ContainSubstring("application/json"))
	})

	It("sends a single-turn user message with the generation policy", func() {
		_, err := newClient().Complete(context.Background(), llm.Request{
			Model:       "meta-llama/llama-3.1-70b-instruct",
			UserMessage: "what is the weather",
			MaxTokens:   1000,
			Temperature: 0.7,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(captured.Body["model"]).To(Equal("meta-llama/llama-3.1-70b-instruct"))
		Expect(captured.Body["max_tokens"]).To(BeEquivalentTo(1000))
		Expect(captured.Body["temperature"]).To(BeEquivalentTo(0.7))

		messages, ok := captured.Body["messages"].([]any)
		Expect(ok).To(BeTrue())
		Expect(messages).To(HaveLen(1))
		msg := messages[0].(map[string]any)
		Expect(msg["role"]).To(Equal("user"))
		Expect(msg["content"]).To(Equal("what is the weather"))
	})

	It("returns empty content when the upstream reply has no choices", func() {
		payload = `{"id": "gen-0", "object": "chat.completion", "choices": [], "usage": {"prompt_tokens": 1, "completion_tokens": 0}}`

		resp, err := newClient().Complete(context.Background(), llm.Request{
			Model:       "openai/gpt-4o",
			UserMessage: "hi",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Content).To(BeEmpty())
	})

	It("surfaces non-2xx upstream status as an error", func() {
		status = http.StatusBadGateway
		payload = `{"error": {"message": "provider exploded"}}`

		_, err := newClient().Complete(context.Background(), llm.Request{
			Model:       "openai/gpt-4o",
			UserMessage: "hi",
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("upstream chat completion"))
	})

	It("rejects an empty model before calling upstream", func() {
		called := false
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := newClient().Complete(context.Background(), llm.Request{UserMessage: "hi"})
		Expect(err).To(MatchError(ContainSubstring("model is required")))
		Expect(called).To(BeFalse())
	})
})
